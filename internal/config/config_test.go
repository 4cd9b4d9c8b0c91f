package config

import (
	"flag"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	type want struct {
		runAddress  string
		catalogPath string
		receiptPath string
	}

	tests := []struct {
		name  string
		env   map[string]string
		flags []string
		want  want
	}{
		{
			name:  "defaults",
			env:   map[string]string{},
			flags: []string{},
			want: want{
				runAddress:  "",
				catalogPath: "movies.csv",
				receiptPath: "receipt.txt",
			},
		},
		{
			name: "env only",
			env: map[string]string{
				"RUN_ADDRESS":  "localhost:9999",
				"CATALOG_PATH": "/data/catalog.csv",
				"RECEIPT_PATH": "/data/receipt.txt",
			},
			flags: []string{},
			want: want{
				runAddress:  "localhost:9999",
				catalogPath: "/data/catalog.csv",
				receiptPath: "/data/receipt.txt",
			},
		},
		{
			name: "flags only",
			env:  map[string]string{},
			flags: []string{
				"-a", "localhost:7777",
				"-c", "flag-catalog.csv",
				"-f", "flag-receipt.txt",
			},
			want: want{
				runAddress:  "localhost:7777",
				catalogPath: "flag-catalog.csv",
				receiptPath: "flag-receipt.txt",
			},
		},
		{
			name: "env overrides flags",
			env: map[string]string{
				"RUN_ADDRESS":  "env:9000",
				"CATALOG_PATH": "env-catalog.csv",
				"RECEIPT_PATH": "env-receipt.txt",
			},
			flags: []string{
				"-a", "flag:8000",
				"-c", "flag-catalog.csv",
				"-f", "flag-receipt.txt",
			},
			want: want{
				runAddress:  "env:9000",
				catalogPath: "env-catalog.csv",
				receiptPath: "env-receipt.txt",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)

			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			os.Args = append([]string{"test"}, tt.flags...)

			cfg, err := Parse()
			require.NoError(t, err)

			assert.Equal(t, tt.want.runAddress, cfg.RunAddress)
			assert.Equal(t, tt.want.catalogPath, cfg.CatalogPath)
			assert.Equal(t, tt.want.receiptPath, cfg.ReceiptPath)
		})
	}
}
