package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordTokenIssued("access")
	c.RecordTokenIssued("access")
	c.RecordTokenIssued("refresh")
	c.RecordPrediction("ok")
	c.RecordPrediction("upstream_error")

	expected := `
# HELP symptom_checker_tokens_issued_total Количество выданных токенов по классам (access, refresh)
# TYPE symptom_checker_tokens_issued_total counter
symptom_checker_tokens_issued_total{kind="access"} 2
symptom_checker_tokens_issued_total{kind="refresh"} 1
`
	err := testutil.GatherAndCompare(reg, strings.NewReader(expected), "symptom_checker_tokens_issued_total")
	require.NoError(t, err)

	assert.Equal(t, float64(1), testutil.ToFloat64(c.predictions.WithLabelValues("ok")))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.predictions.WithLabelValues("upstream_error")))
	assert.Equal(t, float64(0), testutil.ToFloat64(c.predictions.WithLabelValues("storage_error")))
}
