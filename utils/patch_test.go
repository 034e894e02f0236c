package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type patchDTO struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	RoleID   *uint   `json:"role"`
	Ignored  *string `json:"-"`
	Untagged *string
}

func strPtr(s string) *string { return &s }

func TestUpdatesFromPtrDTO(t *testing.T) {
	role := uint(3)
	dto := patchDTO{
		Name:    strPtr("Asha"),
		RoleID:  &role,
		Ignored: strPtr("skip"),
	}

	updates := UpdatesFromPtrDTO(&dto, map[string]string{"role": "role_id"})

	assert.Equal(t, map[string]any{
		"name":    "Asha",
		"role_id": uint(3),
	}, updates, "nil fields, json:\"-\" and untagged fields are skipped; renames apply")
}

func TestUpdatesFromPtrDTONonPointerInput(t *testing.T) {
	assert.Empty(t, UpdatesFromPtrDTO(patchDTO{Name: strPtr("x")}, nil))
}

func TestNormalizePtrDTO(t *testing.T) {
	dto := patchDTO{Name: strPtr("  Asha  "), Email: nil}
	NormalizePtrDTO(&dto)

	assert.Equal(t, "Asha", *dto.Name)
	assert.Nil(t, dto.Email, "nil pointers stay nil")
}

func TestParseIntDefault(t *testing.T) {
	assert.Equal(t, 25, ParseIntDefault("25", 10))
	assert.Equal(t, 10, ParseIntDefault("", 10))
	assert.Equal(t, 10, ParseIntDefault("abc", 10))
	assert.Equal(t, 10, ParseIntDefault("-5", 10), "negative values fall back to the default")
}
