package permission_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/internal/service/permission"
	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/internal/store/memstore"
	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/pkg/reqctx"
)

func TestAuditedResolverLogsDecisions(t *testing.T) {
	st := memstore.New()
	eng := permission.NewEngine(st.Grants(), st.Overrides())

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	audited := permission.NewAuditedResolver(eng, logger)

	roleID := uuid.Must(uuid.NewV7())
	mustGrant(t, st, roleID,
		permission.GrantSpec{Path: "deals", Type: permission.PermView, Granted: true},
	)

	ctx := reqctx.WithRequestMeta(context.Background(), &reqctx.RequestMeta{RequestID: "req-123"})

	allowed, err := audited.HasPermission(ctx, roleID, "deals", permission.PermView, nil)
	if err != nil {
		t.Fatalf("HasPermission() error = %v", err)
	}
	if !allowed {
		t.Fatal("wrapped engine decision must pass through unchanged")
	}

	line := buf.String()
	for _, want := range []string{"permission_decision", roleID.String(), `"path":"deals"`, `"allowed":true`, "req-123"} {
		if !strings.Contains(line, want) {
			t.Errorf("audit line missing %q: %s", want, line)
		}
	}

	buf.Reset()
	allowed, err = audited.HasPermission(ctx, roleID, "reports", permission.PermView, nil)
	if err != nil {
		t.Fatalf("HasPermission() error = %v", err)
	}
	if allowed {
		t.Fatal("unknown path must deny")
	}
	if line := buf.String(); !strings.Contains(line, `"allowed":false`) || !strings.Contains(line, "WARN") {
		t.Errorf("denied decision should log at warn level: %s", line)
	}
}
