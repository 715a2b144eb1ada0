package db

import "testing"

func TestExtractDBName(t *testing.T) {
	tests := []struct {
		name    string
		conn    string
		want    string
		wantErr bool
	}{
		{name: "url", conn: "postgres://u:p@localhost:5432/wrapads?sslmode=disable", want: "wrapads"},
		{name: "key value", conn: "host=localhost port=5432 dbname=console sslmode=disable", want: "console"},
		{name: "url without db", conn: "postgres://localhost:5432", wantErr: true},
		{name: "key value without db", conn: "host=localhost", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractDBName(tt.conn)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestReplaceDBName(t *testing.T) {
	got, err := replaceDBName("postgres://u:p@localhost:5432/wrapads?sslmode=disable", "postgres")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "postgres://u:p@localhost:5432/postgres?sslmode=disable" {
		t.Fatalf("unexpected url: %s", got)
	}

	got, err = replaceDBName("host=localhost dbname=wrapads sslmode=disable", "postgres")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "host=localhost dbname=postgres sslmode=disable" {
		t.Fatalf("unexpected conn string: %s", got)
	}
}
