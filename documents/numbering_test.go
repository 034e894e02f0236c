package documents_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hvac-backoffice/documents"
)

func TestNumber(t *testing.T) {
	mar := time.Date(2026, time.March, 5, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "KA/SPL/26/0381", documents.Number("KA", "spl", mar, 81))

	nov := time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "KA/PO-A/25/117", documents.Number("KA", "PO-A", nov, 7))
}

func TestItemCode(t *testing.T) {
	assert.Equal(t, "ITM-0042", documents.ItemCode("itm", 42))
	assert.Equal(t, "CU-12345", documents.ItemCode("CU", 12345))
}

func TestRevisionLabels(t *testing.T) {
	label := documents.RevisionLabel("KA/SPL/26/0381", 1)
	assert.Equal(t, "KA/SPL/26/0381-R1", label)

	n, err := documents.ParseRevision(label)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	next, err := documents.NextRevisionLabel(label)
	require.NoError(t, err)
	assert.Equal(t, "KA/SPL/26/0381-R2", next)

	// number parts containing "-R" elsewhere still parse off the last suffix
	n, err = documents.ParseRevision("KA/PO-R/26/081-R7")
	require.NoError(t, err)
	assert.Equal(t, 7, n)
}

func TestParseRevision_Invalid(t *testing.T) {
	for _, label := range []string{"KA/SPL/26/0381", "X-R", "X-R0", "X-Rx"} {
		_, err := documents.ParseRevision(label)
		assert.Error(t, err, "label %q", label)
	}
}
