package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus("open"))
	assert.True(t, ValidStatus("processing"))
	assert.True(t, ValidStatus("closed"))

	assert.False(t, ValidStatus("resolved"))
	assert.False(t, ValidStatus("Open"))
	assert.False(t, ValidStatus(""))
}
