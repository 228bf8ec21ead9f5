package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/pageblade/pageblade"
)

func TestDecodePayload(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		var req pageblade.WebsiteCreateRequest
		require.NoError(t, decodePayload([]byte(`{"name":"Docs","enabled":true}`), &req))
		require.NotNil(t, req.Name)
		assert.Equal(t, "Docs", *req.Name)
		require.NotNil(t, req.Enabled)
		assert.True(t, *req.Enabled)
		assert.Nil(t, req.Domain)
	})

	t.Run("yaml", func(t *testing.T) {
		var req pageblade.TenantCreateRequest
		require.NoError(t, decodePayload([]byte("name: Acme\nwebsitesLimit: 5\ncustomDomains: false\n"), &req))
		assert.Equal(t, "Acme", req.Name)
		require.NotNil(t, req.WebsitesLimit)
		assert.Equal(t, 5, *req.WebsitesLimit)
		require.NotNil(t, req.CustomDomains)
		assert.False(t, *req.CustomDomains)
	})

	t.Run("unknown field", func(t *testing.T) {
		var req pageblade.WebsiteCreateRequest
		err := decodePayload([]byte(`{"nmae":"typo"}`), &req)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "nmae")
	})

	t.Run("not an object", func(t *testing.T) {
		var req pageblade.WebsiteCreateRequest
		require.Error(t, decodePayload([]byte(`["a"]`), &req))
	})

	t.Run("empty", func(t *testing.T) {
		var req pageblade.WebsiteCreateRequest
		require.Error(t, decodePayload([]byte(""), &req))
	})
}

func TestPayloadFlags(t *testing.T) {
	newCmd := func() (*cobra.Command, *payloadFlags) {
		cmd := &cobra.Command{Use: "test"}
		p := &payloadFlags{}
		p.register(cmd)
		return cmd, p
	}

	t.Run("from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "page.yaml")
		require.NoError(t, os.WriteFile(path, []byte("slug: home\npublish: true\n"), 0o600))

		cmd, p := newCmd()
		require.NoError(t, cmd.Flags().Set("file", path))

		var req pageblade.WebpageUpdateRequest
		require.NoError(t, p.decode(cmd, &req))
		require.NotNil(t, req.Slug)
		assert.Equal(t, "home", *req.Slug)
	})

	t.Run("from stdin", func(t *testing.T) {
		cmd, p := newCmd()
		cmd.SetIn(strings.NewReader(`{"name":"Home"}`))
		require.NoError(t, cmd.Flags().Set("file", "-"))

		var req pageblade.WebpageCreateRequest
		require.NoError(t, p.decode(cmd, &req))
		assert.Equal(t, "Home", req.Name)
	})

	t.Run("missing body", func(t *testing.T) {
		cmd, p := newCmd()
		var req pageblade.WebpageCreateRequest
		err := p.decode(cmd, &req)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "--data or --file")
	})
}
