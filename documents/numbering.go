package documents

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Number builds a human-readable document number from a series prefix, a
// book/category code, the current date and the record's database id. The
// id part makes the number unique for the document's lifetime, which is
// why callers assign it only after the row exists.
//
// Example: Number("KA", "SPL", march2026, 81) => "KA/SPL/26/0381".
func Number(series, code string, now time.Time, id uint) string {
	yy := now.Format("06")
	mm := fmt.Sprintf("%02d", int(now.Month()))
	return fmt.Sprintf("%s/%s/%s/%s%d", series, strings.ToUpper(code), yy, mm, id)
}

// ItemCode builds a catalog code from a short prefix and the row id,
// e.g. ItemCode("ITM", 42) => "ITM-0042".
func ItemCode(prefix string, id uint) string {
	return fmt.Sprintf("%s-%04d", strings.ToUpper(prefix), id)
}

// RevisionLabel appends the revision suffix to a document number:
// RevisionLabel("KA/SPL/26/0381", 2) => "KA/SPL/26/0381-R2".
func RevisionLabel(number string, revision int) string {
	return fmt.Sprintf("%s-R%d", number, revision)
}

// ParseRevision extracts the revision counter from a version label
// produced by RevisionLabel.
func ParseRevision(label string) (int, error) {
	idx := strings.LastIndex(label, "-R")
	if idx < 0 {
		return 0, fmt.Errorf("version label %q has no revision suffix", label)
	}
	n, err := strconv.Atoi(label[idx+2:])
	if err != nil || n < 1 {
		return 0, fmt.Errorf("version label %q has an invalid revision suffix", label)
	}
	return n, nil
}

// NextRevisionLabel returns the label of the revision that supersedes the
// given one, keeping the document number part intact.
func NextRevisionLabel(label string) (string, error) {
	n, err := ParseRevision(label)
	if err != nil {
		return "", err
	}
	idx := strings.LastIndex(label, "-R")
	return RevisionLabel(label[:idx], n+1), nil
}
