package router

import (
	"context"
	"testing"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors"
	"github.com/stretchr/testify/assert"
)

func TestAuthSkip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		method   string
		wantAuth bool
	}{
		{method: "/docchat.Auth/Register", wantAuth: false},
		{method: "/docchat.Auth/Login", wantAuth: false},
		{method: "/docchat.Auth/Refresh", wantAuth: false},
		{method: "/docchat.Chat/Ping", wantAuth: false},
		{method: "/docchat.Chat/ResolveTurn", wantAuth: true},
		{method: "/docchat.Chat/SetCurrentDocument", wantAuth: true},
		{method: "/docchat.Chat/GetDocumentURL", wantAuth: true},
		{method: "/docchat.Chat/ReportTurn", wantAuth: true},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			t.Parallel()

			got := authSkip(context.Background(), newCallMeta(tt.method))
			assert.Equal(t, tt.wantAuth, got)
		})
	}
}

func newCallMeta(fullMethod string) interceptors.CallMeta {
	// CallMeta.FullMethod() joins "/" + Service + "/" + Method.
	service, method := splitFullMethod(fullMethod)
	return interceptors.CallMeta{Service: service, Method: method, Typ: interceptors.Unary}
}

func splitFullMethod(fullMethod string) (string, string) {
	trimmed := fullMethod[1:]
	for i := 0; i < len(trimmed); i++ {
		if trimmed[i] == '/' {
			return trimmed[:i], trimmed[i+1:]
		}
	}
	return trimmed, ""
}
