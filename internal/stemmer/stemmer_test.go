package stemmer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"", Porter},
		{"porter", Porter},
		{"snowball", Snowball},
		{"  SnowBall ", Snowball},
		{"lancaster", Porter},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ForName(tt.name).Name())
		})
	}
}

func TestPorter_Stem(t *testing.T) {
	s := NewPorter()
	assert.Equal(t, "run dog", s.Stem("running dogs"))
	assert.Equal(t, "connect", s.Stem("Connections"))
	assert.Equal(t, "", s.Stem("   "))
}

func TestSnowball_Stem(t *testing.T) {
	s := NewSnowball()
	assert.Equal(t, "run dog", s.Stem("running  dogs"))
	assert.Equal(t, "connect", s.Stem("connections"))
}
