package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssue_RejectsBadInput(t *testing.T) {
	_, _, err := issue("staff", "", 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ttl must be positive")

	_, _, err = issue("staff", "not-a-uuid", time.Minute)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid user ID")
}
