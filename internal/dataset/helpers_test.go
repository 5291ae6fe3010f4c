package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sells-group/acceptance-map/internal/country"
	"github.com/sells-group/acceptance-map/internal/model"
)

const labelEqualRights = "Equal rights for gay, lesbian, and bisexual people"

// sheetOneCSV builds a CSV with one QB15_1 row for each of the 27 member
// states. BE and DE carry the scenario values; the rest are filler.
func sheetOneCSV() string {
	var sb strings.Builder
	sb.WriteString("question,code,acceptance\n")
	for i, code := range country.Members() {
		acc := fmt.Sprintf("%d.0", 40+i)
		switch code {
		case "BE":
			acc = "91.0"
		case "DE":
			acc = "84.5"
		}
		fmt.Fprintf(&sb, "%q,%s,%s\n", model.QuestionEqualRights, code, acc)
	}
	return sb.String()
}

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// rewriteSource replaces the file and bumps its mtime so the change is
// visible even on filesystems with coarse timestamps.
func rewriteSource(t *testing.T, path, content string, bump time.Duration) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	mt := time.Now().Add(bump)
	require.NoError(t, os.Chtimes(path, mt, mt))
}
