package config_test

import (
	"casona/config"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_ElectricAllowList(t *testing.T) {
	tests := []struct {
		name string
		ids  string
		want []string
	}{
		{
			name: "empty",
			ids:  "",
			want: []string{},
		},
		{
			name: "single id",
			ids:  "BK-100",
			want: []string{"BK-100"},
		},
		{
			name: "multiple ids with whitespace",
			ids:  " BK-100 , BK-200 ,BK-300",
			want: []string{"BK-100", "BK-200", "BK-300"},
		},
		{
			name: "stray commas",
			ids:  ",BK-100,,",
			want: []string{"BK-100"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Booking.ElectricIDs = tt.ids

			assert.Equal(t, tt.want, cfg.ElectricAllowList())
		})
	}
}
