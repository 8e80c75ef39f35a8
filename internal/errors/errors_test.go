package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestE(t *testing.T) {
	inner := stderrors.New("boom")
	err := E("wifi toggle", inner)
	require.Error(t, err)
	assert.Equal(t, `operation "wifi toggle" failed: boom`, err.Error())
	assert.True(t, stderrors.Is(err, inner))
}
