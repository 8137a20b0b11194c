package tmpl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name    string
		tmpl    string
		data    any
		want    string
		wantErr bool
	}{
		{
			name: "simple substitution",
			tmpl: "hello {{ .Name }}",
			data: map[string]string{"Name": "world"},
			want: "hello world",
		},
		{
			name: "listing copy slots",
			tmpl: "{{ .Description }}. Premium {{ .Category }} at ₹{{ .Price }}.",
			data: map[string]string{
				"Description": "Quick dry fabric",
				"Category":    "Activewear",
				"Price":       "799",
			},
			want: "Quick dry fabric. Premium Activewear at ₹799.",
		},
		{
			name: "struct data",
			tmpl: "{{ .Name }} ({{ .SKU }})",
			data: struct {
				Name string
				SKU  string
			}{Name: "Aurora Performance Tee", SKU: "AUR-TEE-01"},
			want: "Aurora Performance Tee (AUR-TEE-01)",
		},
		{
			name: "no variables",
			tmpl: "static string",
			data: nil,
			want: "static string",
		},
		{
			name: "join function",
			tmpl: `{{ join .Tags ";" }}`,
			data: map[string][]string{"Tags": {"sports", "running"}},
			want: "sports;running",
		},
		{
			name: "title function",
			tmpl: `{{ title .Category }}`,
			data: map[string]string{"Category": "home decor"},
			want: "Home Decor",
		},
		{
			name:    "missing key errors",
			tmpl:    "{{ .Missing }}",
			data:    map[string]string{"Name": "test"},
			wantErr: true,
		},
		{
			name:    "invalid template syntax",
			tmpl:    "{{ .Name }",
			data:    map[string]string{"Name": "test"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(tt.tmpl, tt.data)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
