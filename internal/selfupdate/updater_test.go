package selfupdate

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetNameFor(t *testing.T) {
	tests := []struct {
		goos    string
		goarch  string
		want    string
		wantErr bool
	}{
		{"darwin", "arm64", "casetalk_Darwin_all.tar.gz", false},
		{"darwin", "amd64", "casetalk_Darwin_all.tar.gz", false},
		{"linux", "amd64", "casetalk_Linux_x86_64.tar.gz", false},
		{"linux", "arm64", "casetalk_Linux_arm64.tar.gz", false},
		{"linux", "386", "casetalk_Linux_i386.tar.gz", false},
		{"windows", "amd64", "casetalk_Windows_x86_64.zip", false},
		{"windows", "arm64", "casetalk_Windows_arm64.zip", false},
		{"linux", "mips", "", true},
		{"plan9", "amd64", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.goos+"/"+tt.goarch, func(t *testing.T) {
			got, err := assetNameFor(tt.goos, tt.goarch)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseChecksums(t *testing.T) {
	data := []byte(`abc123  casetalk_Linux_x86_64.tar.gz
def456  casetalk_Darwin_all.tar.gz

malformed-line
789fed  casetalk_Windows_x86_64.zip
`)

	checksums := parseChecksums(data)
	assert.Len(t, checksums, 3)
	assert.Equal(t, "abc123", checksums["casetalk_Linux_x86_64.tar.gz"])
	assert.Equal(t, "def456", checksums["casetalk_Darwin_all.tar.gz"])
	assert.Equal(t, "789fed", checksums["casetalk_Windows_x86_64.zip"])
}

func TestVerifyChecksum(t *testing.T) {
	data := []byte("hello world")
	h := sha256.Sum256(data)
	good := hex.EncodeToString(h[:])

	assert.NoError(t, verifyChecksum(data, good))

	err := verifyChecksum(data, "deadbeef")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrChecksum))
}

func buildTarGz(t *testing.T, files map[string][]byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gz)
	for name, content := range files {
		require.NoError(t, tw.WriteHeader(&tar.Header{
			Name:     name,
			Mode:     0755,
			Size:     int64(len(content)),
			Typeflag: tar.TypeReg,
		}))
		_, err := tw.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, tw.Close())
	require.NoError(t, gz.Close())
	return buf.Bytes()
}

func buildZip(t *testing.T, files map[string][]byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestExtractBinary_TarGz(t *testing.T) {
	archive := buildTarGz(t, map[string][]byte{
		"README.md": []byte("docs"),
		"casetalk":  []byte("binary-bytes"),
	})

	got, err := extractBinary(archive, "casetalk_Linux_x86_64.tar.gz")
	require.NoError(t, err)
	assert.Equal(t, []byte("binary-bytes"), got)
}

func TestExtractBinary_TarGzNested(t *testing.T) {
	archive := buildTarGz(t, map[string][]byte{
		"dist/casetalk": []byte("nested-binary"),
	})

	got, err := extractBinary(archive, "casetalk_Darwin_all.tar.gz")
	require.NoError(t, err)
	assert.Equal(t, []byte("nested-binary"), got)
}

func TestExtractBinary_TarGzMissing(t *testing.T) {
	archive := buildTarGz(t, map[string][]byte{
		"other-tool": []byte("nope"),
	})

	_, err := extractBinary(archive, "casetalk_Linux_x86_64.tar.gz")
	assert.Error(t, err)
}

func TestExtractBinary_Zip(t *testing.T) {
	archive := buildZip(t, map[string][]byte{
		"casetalk.exe": []byte("windows-binary"),
		"LICENSE":      []byte("mit"),
	})

	got, err := extractBinary(archive, "casetalk_Windows_x86_64.zip")
	require.NoError(t, err)
	assert.Equal(t, []byte("windows-binary"), got)
}
