package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/censussample/pkg/census"
	"github.com/dmitrymomot/censussample/pkg/config"
	"github.com/dmitrymomot/censussample/pkg/redis"
	"github.com/dmitrymomot/censussample/pkg/samplefile"
)

var validValues = map[string]string{
	census.ColARID:               "AR00001",
	census.ColEstabARID:          "ES00001",
	census.ColUPRN:               "10023122451",
	census.ColAddressType:        "HH",
	census.ColEstabType:          "Household",
	census.ColAddressLevel:       "U",
	census.ColABPCode:            "RD06",
	census.ColAddressLine1:       "1 High Street",
	census.ColTownName:           "Newport",
	census.ColPostcode:           "NP10 8XG",
	census.ColLatitude:           "51.4463421",
	census.ColLongitude:          "-3.0094520",
	census.ColOA:                 "W00010261",
	census.ColLSOA:               "W01001410",
	census.ColMSOA:               "W02000301",
	census.ColLAD:                "W06000022",
	census.ColRegion:             "W99999999",
	census.ColHTCWillingness:     "1",
	census.ColHTCDigital:         "3",
	census.ColTreatmentCode:      "HH_LF2R1W",
	census.ColCESecure:           "0",
	census.ColPrintBatch:         "12",
}

// writeSample writes a header and one row per override map, each row
// starting from validValues with a distinct ARID and UPRN.
func writeSample(t *testing.T, rows ...map[string]string) string {
	t.Helper()

	var b strings.Builder
	columns := census.Columns()
	b.WriteString(strings.Join(columns, ",") + "\n")
	for i, override := range rows {
		values := make([]string, len(columns))
		for j, column := range columns {
			values[j] = validValues[column]
			switch column {
			case census.ColARID:
				values[j] = fmt.Sprintf("AR%05d", i+1)
			case census.ColUPRN:
				values[j] = fmt.Sprintf("100231224%02d", i+1)
			}
			if v, ok := override[column]; ok {
				values[j] = v
			}
		}
		b.WriteString(strings.Join(values, ",") + "\n")
	}

	path := filepath.Join(t.TempDir(), "sample.csv")
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o600))
	return path
}

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	config.ResetCache()
	t.Cleanup(config.ResetCache)
	t.Setenv("LOG_LEVEL", "error")

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestValidateCmd(t *testing.T) {
	t.Run("valid sample", func(t *testing.T) {
		path := writeSample(t, nil, nil)
		out, _, err := execute(t, "", "validate", path)
		require.NoError(t, err)
		assert.Contains(t, out, "Sample file is valid")
	})

	t.Run("failures make the command fail", func(t *testing.T) {
		path := writeSample(t, nil, map[string]string{census.ColTreatmentCode: "NOPE"})
		out, _, err := execute(t, "", "validate", path)
		require.ErrorIs(t, err, errFailures)
		assert.Contains(t, out, "line: 3, column: TREATMENT_CODE")
		assert.Contains(t, out, "validation failure")
	})

	t.Run("asks before showing more than a page", func(t *testing.T) {
		bad := map[string]string{census.ColHTCDigital: "9"}
		path := writeSample(t, bad, bad, bad)

		out, _, err := execute(t, "n\n", "validate", "--page-size", "1", path)
		require.ErrorIs(t, err, errFailures)
		assert.Equal(t, 1, strings.Count(out, "column: HTC_DIGITAL"))
		assert.Contains(t, out, "Show the remaining 2 failures? [y/N]: ")

		out, _, err = execute(t, "y\n", "validate", "--page-size", "1", path)
		require.ErrorIs(t, err, errFailures)
		assert.Equal(t, 3, strings.Count(out, "column: HTC_DIGITAL"))
	})

	t.Run("page size from the environment", func(t *testing.T) {
		bad := map[string]string{census.ColHTCDigital: "9"}
		path := writeSample(t, bad, bad)
		t.Setenv("VALIDATION_PAGE_SIZE", "1")

		out, _, err := execute(t, "", "validate", path)
		require.ErrorIs(t, err, errFailures)
		assert.Contains(t, out, "Show the remaining 1 failures?")
	})

	t.Run("json report", func(t *testing.T) {
		path := writeSample(t, map[string]string{census.ColHTCDigital: "9"})
		out, _, err := execute(t, "", "validate", "--format", "json", path)
		require.ErrorIs(t, err, errFailures)
		assert.Contains(t, out, `"column": "HTC_DIGITAL"`)
		assert.Contains(t, out, `"valid": false`)
	})

	t.Run("progress goes to stderr", func(t *testing.T) {
		path := writeSample(t, nil, nil)
		out, errOut, err := execute(t, "", "validate", "--progress-every", "1", path)
		require.NoError(t, err)
		assert.Contains(t, errOut, "2 rows validated, 0 failures so far")
		assert.NotContains(t, out, "rows validated")
	})

	t.Run("unknown format", func(t *testing.T) {
		path := writeSample(t, nil)
		_, _, err := execute(t, "", "validate", "--format", "xml", path)
		require.Error(t, err)
		assert.NotErrorIs(t, err, errFailures)
	})

	t.Run("missing file", func(t *testing.T) {
		_, _, err := execute(t, "", "validate", filepath.Join(t.TempDir(), "nope.csv"))
		require.Error(t, err)
	})

	t.Run("requires a file argument", func(t *testing.T) {
		_, _, err := execute(t, "", "validate")
		require.Error(t, err)
	})
}

func TestCompareCmd(t *testing.T) {
	t.Run("only field assignments changed", func(t *testing.T) {
		original := writeSample(t, nil, nil)
		updated := writeSample(t, nil, map[string]string{census.ColFieldOfficerID: "FO-12"})

		out, _, err := execute(t, "", "compare", original, updated)
		require.NoError(t, err)
		assert.Contains(t, out, "This file has PASSED validation")
	})

	t.Run("other changes fail", func(t *testing.T) {
		original := writeSample(t, nil, nil)
		updated := writeSample(t, nil, map[string]string{census.ColTownName: "Cardiff"})

		out, _, err := execute(t, "", "compare", original, updated)
		require.ErrorIs(t, err, errFailures)
		assert.Contains(t, out, `differs from original value "Newport"`)
		assert.Contains(t, out, "This file has FAILED validation")
	})
}

func TestAddIDsCmd(t *testing.T) {
	path := writeSample(t, nil, nil)
	dst := filepath.Join(t.TempDir(), "with-ids.csv")

	_, errOut, err := execute(t, "", "add-ids", path, "--out", dst)
	require.NoError(t, err)
	assert.Contains(t, errOut, "Added case ids to 2 rows")

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "CASE_ID,ARID,"))
	id, _, _ := strings.Cut(lines[1], ",")
	_, err = uuid.Parse(id)
	assert.NoError(t, err)

	t.Run("writes to stdout by default", func(t *testing.T) {
		out, _, err := execute(t, "", "add-ids", path)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, "CASE_ID,"))
	})
}

func TestUpdateFormatCmd(t *testing.T) {
	// An older sample without the CE_SECURE column.
	var columns []string
	for _, c := range census.Columns() {
		if c != census.ColCESecure {
			columns = append(columns, c)
		}
	}
	values := make([]string, len(columns))
	for i, c := range columns {
		values[i] = validValues[c]
	}
	path := filepath.Join(t.TempDir(), "old.csv")
	require.NoError(t, os.WriteFile(path,
		[]byte(strings.Join(columns, ",")+"\n"+strings.Join(values, ",")+"\n"), 0o600))

	_, _, err := execute(t, "", "validate", path)
	require.ErrorIs(t, err, errFailures)

	out, _, err := execute(t, "", "update-format", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Updated 1 rows")

	out, _, err = execute(t, "", "validate", path+".new")
	require.NoError(t, err)
	assert.Contains(t, out, "Sample file is valid")

	t.Run("missing column without default", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.csv")
		require.NoError(t, os.WriteFile(bad, []byte("ARID\nA1\n"), 0o600))
		dst := filepath.Join(t.TempDir(), "bad.new")

		_, _, err := execute(t, "", "update-format", bad, "--out", dst)
		require.ErrorIs(t, err, samplefile.ErrMissingColumn)
		assert.NoFileExists(t, dst)
	})
}

func TestDownloadCmd(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sample.csv"), []byte("ARID\nA1\n"), 0o600))
	dst := filepath.Join(t.TempDir(), "out.csv")

	out, _, err := execute(t, "", "download", "sample.csv", "--dir", dir, "--out", dst)
	require.NoError(t, err)
	assert.Contains(t, out, "Downloaded sample.csv (8 bytes)")

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "ARID\nA1\n", string(data))

	t.Run("rejects keys outside the directory", func(t *testing.T) {
		_, _, err := execute(t, "", "download", "../secret", "--dir", dir, "--out", dst)
		require.Error(t, err)
	})
}

func TestLoadCmd(t *testing.T) {
	// Nothing listens here, so the command fails if it reaches redis.
	t.Setenv("REDIS_URL", "redis://127.0.0.1:1/0")
	t.Setenv("REDIS_RETRY_ATTEMPTS", "1")
	t.Setenv("REDIS_CONNECT_TIMEOUT", "200ms")

	t.Run("invalid sample is reported before connecting", func(t *testing.T) {
		path := writeSample(t, map[string]string{census.ColHTCDigital: "9"})
		out, _, err := execute(t, "", "load", path, "ce", "ap", "ci")
		require.ErrorIs(t, err, errFailures)
		assert.Contains(t, out, "column: HTC_DIGITAL")
		assert.NotContains(t, out, "Loading sample units")
	})

	t.Run("unreachable redis", func(t *testing.T) {
		path := writeSample(t, nil)
		_, _, err := execute(t, "", "load", path, "ce", "ap", "ci")
		require.Error(t, err)
		assert.NotErrorIs(t, err, errFailures)
	})

	t.Run("requires all ids", func(t *testing.T) {
		path := writeSample(t, nil)
		_, _, err := execute(t, "", "load", path, "ce")
		require.Error(t, err)
	})
}

func TestPingCmd(t *testing.T) {
	mr := miniredis.RunT(t)
	t.Setenv("REDIS_URL", "redis://"+mr.Addr()+"/0")
	t.Setenv("BROKER_REDIS_URL", "redis://"+mr.Addr()+"/1")

	out, _, err := execute(t, "", "ping")
	require.NoError(t, err)
	assert.Contains(t, out, "cache: ok")
	assert.Contains(t, out, "queue: ok")

	t.Run("reports an unreachable queue", func(t *testing.T) {
		t.Setenv("BROKER_REDIS_URL", "redis://127.0.0.1:1/1")
		t.Setenv("REDIS_RETRY_ATTEMPTS", "1")
		t.Setenv("REDIS_CONNECT_TIMEOUT", "200ms")

		out, _, err := execute(t, "", "ping")
		require.Error(t, err)
		assert.ErrorContains(t, err, "queue:")
		assert.ErrorIs(t, err, redis.ErrRedisNotReady)
		assert.Contains(t, out, "cache: ok")
		assert.Contains(t, out, "queue: unreachable")
	})
}

func TestRootCmd_Version(t *testing.T) {
	out, _, err := execute(t, "", "--version")
	require.NoError(t, err)
	assert.Contains(t, out, version)
}
