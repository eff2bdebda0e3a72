package name

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateAccepts(t *testing.T) {
	for _, s := range []string{"camera", "iso_speed", "camera.sensor", "a1"} {
		assert.NoError(t, Validate(s), s)
	}
}

func TestValidateRejects(t *testing.T) {
	for _, s := range []string{"Camera", "9camera", "_x", "x_", "x..y", "x__y", ".a", "a."} {
		assert.Error(t, Validate(s), s)
	}
}
