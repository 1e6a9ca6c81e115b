package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	valid := Commit{
		Hash:       "abc123",
		AuthorName: "alice",
		Date:       time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC),
		Files:      []string{"a.go"},
		Additions:  1,
	}
	assert.NoError(t, valid.Validate())

	missingAuthor := valid
	missingAuthor.AuthorName = ""
	assert.Error(t, missingAuthor.Validate())

	missingDate := valid
	missingDate.Date = time.Time{}
	assert.Error(t, missingDate.Validate())

	negative := valid
	negative.Additions = -5
	assert.Error(t, negative.Validate())
}

func TestInvalidCommitErrorMessage(t *testing.T) {
	err := &InvalidCommitError{Commit: Commit{Hash: "abc123"}, Reason: "missing author"}
	assert.Contains(t, err.Error(), "abc123")
	assert.Contains(t, err.Error(), "missing author")

	noHash := &InvalidCommitError{Reason: "missing author"}
	assert.Contains(t, noHash.Error(), "unknown")
}
