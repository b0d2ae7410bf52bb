package term

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestFormatError(t *testing.T) {
	color.NoColor = true

	assert.Equal(t, "🚨 Boom", FormatError("boom"))
	assert.Equal(t,
		"🚨 Error adding post\n  → Post service returned 500\n    → Down",
		FormatError("error adding post: post service returned 500: down: Down"),
	)
}
