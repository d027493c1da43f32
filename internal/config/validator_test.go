package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateDocument_Valid(t *testing.T) {
	doc := []byte(`{
		"name": "latency",
		"workload": {
			"workers": 4,
			"iterations": 1000,
			"distribution": "exponential",
			"mean": 250,
			"max": 60000
		},
		"reservoir": {"type": "hdr-highres"},
		"report": {"percentiles": [50, 99, 99.9]}
	}`)

	assert.NoError(t, ValidateDocument(doc))
}

func TestValidateDocument_Invalid(t *testing.T) {
	cases := map[string]string{
		"not an object":      `[]`,
		"missing workload":   `{"name": "x"}`,
		"workers wrong type": `{"workload": {"workers": "four", "iterations": 1}}`,
		"negative stddev":    `{"workload": {"workers": 1, "iterations": 1, "stddev": -3}}`,
		"zero percentile":    `{"workload": {"workers": 1, "iterations": 1}, "report": {"percentiles": [0]}}`,
		"unknown top-level":  `{"workload": {"workers": 1, "iterations": 1}, "thresholds": {}}`,
		"bad reservoir type": `{"workload": {"workers": 1, "iterations": 1}, "reservoir": {"type": "uniform"}}`,
		"fractional workers": `{"workload": {"workers": 1.5, "iterations": 1}}`,
		"malformed JSON":     `{"workload":`,
	}

	for name, doc := range cases {
		assert.Error(t, ValidateDocument([]byte(doc)), "case %q should fail validation", name)
	}
}
