package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/effective-security/x/ctl"
	"github.com/effective-security/xgpg/cmd/gpg-tool/cli"
	"github.com/effective-security/xgpg/internal/version"
	logger "github.com/sirupsen/logrus"
)

type app struct {
	cli.Cli

	GenKey  cli.GenKeyCmd  `cmd:"" help:"generate a key pair"`
	Keys    cli.KeysCmd    `cmd:"" help:"key management commands"`
	Encrypt cli.EncryptCmd `cmd:"" help:"encrypt a file"`
	Decrypt cli.DecryptCmd `cmd:"" help:"decrypt a file"`
	Sign    cli.SignCmd    `cmd:"" help:"sign a file"`
	Verify  cli.VerifyCmd  `cmd:"" help:"verify a signature"`
}

func main() {
	logger.SetReportCaller(true)
	logger.SetFormatter(&logger.TextFormatter{})

	realMain(os.Args, os.Stdout, os.Stderr, os.Exit)
}

func realMain(args []string, out io.Writer, errout io.Writer, exit func(int)) {
	cl := app{
		Cli: cli.Cli{},
	}
	cl.Cli.WithErrWriter(errout).
		WithWriter(out)

	parser, err := kong.New(&cl,
		kong.Name("gpg-tool"),
		kong.Description("GnuPG orchestration tools"),
		kong.Writers(out, errout),
		kong.Exit(exit),
		ctl.BoolPtrMapper,
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version.Current().String(),
		})
	if err != nil {
		panic(err)
	}

	ctx, err := parser.Parse(args[1:])
	parser.FatalIfErrorf(err)

	if ctx != nil {
		err = ctx.Run(&cl.Cli)
		ctx.FatalIfErrorf(err)
	}
}
