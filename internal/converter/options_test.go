package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTypeMappings(ttt *testing.T) {
	tests := []struct {
		name    string
		entries []string
		want    map[string]string
		wantErr bool
	}{
		{name: "none"},
		{
			name:    "dotted names keep their case",
			entries: []string{"java.net.URI=java.net.URL", " java.util.UUID = kotlin.String "},
			want:    map[string]string{"java.net.URI": "java.net.URL", "java.util.UUID": "kotlin.String"},
		},
		{name: "later entry wins", entries: []string{"a.B=c.D", "a.B=e.F"}, want: map[string]string{"a.B": "e.F"}},
		{name: "no separator", entries: []string{"java.net.URI"}, wantErr: true},
		{name: "empty target", entries: []string{"java.net.URI="}, wantErr: true},
		{name: "empty source", entries: []string{"=java.net.URL"}, wantErr: true},
	}
	for _, tt := range tests {
		ttt.Run(tt.name, func(t *testing.T) {
			got, err := ParseTypeMappings(tt.entries)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
