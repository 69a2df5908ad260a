package metricskey

import "github.com/effective-security/metrics"

// Perf
var (
	// PerfGPGOperation is perf metric
	PerfGPGOperation = metrics.Describe{
		Type:         metrics.TypeSample,
		Name:         "perf_gpg",
		Help:         "perf_gpg provides the sample metrics of gpg invocations",
		RequiredTags: []string{"operation"},
	}

	// PerfKeyringDecode is perf metric
	PerfKeyringDecode = metrics.Describe{
		Type:         metrics.TypeSample,
		Name:         "perf_keyring_decode",
		Help:         "perf_keyring_decode provides the sample metrics of keyring decoding",
		RequiredTags: []string{"source"},
	}
)

// Metrics returns slice of metrics from this repo
var Metrics = []*metrics.Describe{
	&PerfGPGOperation,
	&PerfKeyringDecode,
}
