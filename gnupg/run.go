package gnupg

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/xgpg/metricskey"
	"github.com/effective-security/xlog"
	"golang.org/x/sync/errgroup"
)

// passphraseFd is the descriptor number the child sees for the passphrase
// pipe: the first ExtraFiles entry lands after stdin/stdout/stderr.
const passphraseFd = 3

// baselineArgs forces non-interactive behavior and routes the status
// protocol to stderr, away from stdout. The home directory is pinned so
// concurrent configurations never share ambient keyring state.
func (g *GPG) baselineArgs(withPassphrase bool) []string {
	args := []string{
		"--homedir", g.homedir,
		"--batch",
		"--no-tty",
		"--yes",
		"--status-fd", "2",
	}
	if withPassphrase {
		// the dedicated side channel keeps the passphrase off argv and
		// out of the stdin data stream, so a passphrase-protected signing
		// key works even while file content is streamed on stdin
		if g.version.AtLeast(2, 1) {
			args = append(args, "--pinentry-mode", "loopback")
		}
		args = append(args, "--passphrase-fd", strconv.Itoa(passphraseFd))
	}
	for i, kr := range g.keyrings {
		if i == 0 {
			args = append(args, "--no-default-keyring")
		}
		args = append(args, "--keyring", kr)
	}
	for _, kr := range g.secretKeyrings {
		args = append(args, "--secret-keyring", kr)
	}
	args = append(args, g.options...)
	return args
}

// run spawns one gpg process for the request and blocks until it exits
// and every stream is fully drained. Input writing, stdout draining and
// status draining progress concurrently; serializing them deadlocks once
// payloads outgrow the pipe buffers.
func (g *GPG) run(ctx context.Context, req *Request) (*CmdResult, error) {
	defer metricskey.PerfGPGOperation.MeasureSince(time.Now(), req.Operation.String())

	input, inputCloser, err := req.inputReader()
	if err != nil {
		return nil, err
	}
	if inputCloser != nil {
		defer inputCloser.Close()
	}

	args := append(g.baselineArgs(req.Passphrase != ""), req.Args...)
	logger.KV(xlog.DEBUG, "op", req.Operation, "args", args)

	cmd := exec.CommandContext(ctx, g.binary, args...)
	// gpg starts an agent on demand; a descendant that inherited the pipes
	// must not hold the streams open after the process itself is gone
	cmd.WaitDelay = 5 * time.Second
	cmd.Env = os.Environ()
	for k, v := range g.env {
		cmd.Env = append(cmd.Env, k+"="+v)
	}
	for k, v := range req.Env {
		cmd.Env = append(cmd.Env, k+"="+v)
	}

	var passWriter *os.File
	if req.Passphrase != "" {
		pr, pw, err := os.Pipe()
		if err != nil {
			return nil, NewError(ErrFailedToRetrieveChildProcess, "unable to open passphrase pipe").WithCause(err)
		}
		defer pr.Close()
		cmd.ExtraFiles = []*os.File{pr}
		passWriter = pw
	}

	var stdin io.WriteCloser
	if input != nil {
		stdin, err = cmd.StdinPipe()
		if err != nil {
			return nil, NewError(ErrFailedToRetrieveChildProcess, "unable to open stdin pipe").WithCause(err)
		}
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, NewError(ErrFailedToRetrieveChildProcess, "unable to open stdout pipe").WithCause(err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, NewError(ErrFailedToRetrieveChildProcess, "unable to open status pipe").WithCause(err)
	}

	if err := cmd.Start(); err != nil {
		if passWriter != nil {
			passWriter.Close()
		}
		return nil, NewError(ErrFailedToStartProcess, "unable to start %q", g.binary).WithCause(err)
	}
	var out bytes.Buffer
	var statusLines []string

	eg := &errgroup.Group{}
	if passWriter != nil {
		eg.Go(func() error {
			defer passWriter.Close()
			secret := []byte(req.Passphrase + "\n")
			defer wipe(secret)
			if _, err := passWriter.Write(secret); err != nil {
				return NewError(ErrWriteFail, "unable to write passphrase").WithCause(err)
			}
			return nil
		})
	}
	var inputErr *Error
	if input != nil {
		eg.Go(func() error {
			defer stdin.Close()
			if _, err := io.Copy(stdin, input); err != nil {
				// the child may exit before consuming its input, e.g. on a
				// bad passphrase; the broken pipe is then a symptom and is
				// judged after the exit verdict
				inputErr = NewError(ErrWriteFail, "unable to write input").WithCause(err)
			}
			return nil
		})
	}
	eg.Go(func() error {
		if _, err := io.Copy(&out, stdout); err != nil {
			return NewError(ErrReadFail, "unable to read output").WithCause(err)
		}
		return nil
	})
	eg.Go(func() error {
		scanner := bufio.NewScanner(stderr)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			statusLines = append(statusLines, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return NewError(ErrReadFail, "unable to read status channel").WithCause(err)
		}
		return nil
	})

	ioErr := eg.Wait()
	waitErr := cmd.Wait()

	res := &CmdResult{
		Success:     waitErr == nil,
		Output:      out.Bytes(),
		StatusLines: statusLines,
		Operation:   req.Operation,
	}

	if ctx.Err() != nil {
		// a deadline kill also breaks the pipes, so it wins over the
		// stream errors it caused
		return nil, NewError(ErrTimeout, "%s terminated by deadline", req.Operation).WithResult(res).WithCause(ctx.Err())
	}
	// the exit verdict is classified before stream errors: a child that
	// bails out early breaks its stdin pipe, and that must not mask the
	// status tokens explaining why it bailed
	if err := classifyResult(res); err != nil {
		return nil, err
	}
	if ioErr != nil {
		var e *Error
		if errors.As(ioErr, &e) {
			return nil, e.WithResult(res)
		}
		return nil, NewError(ErrReadFail, "stream failure").WithResult(res).WithCause(ioErr)
	}
	if inputErr != nil {
		return nil, inputErr.WithResult(res)
	}
	return res, nil
}
