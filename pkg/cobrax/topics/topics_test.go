package topics

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"help/ordering.md":      {Data: []byte("# Ordering\n\nInit order is unspecified.")},
		"help/registration.txt": {Data: []byte("Register from init.")},
		"help/ignored.json":     {Data: []byte("{}")},
	}
}

func TestScanTopics(t *testing.T) {
	t.Run("default_extensions", func(t *testing.T) {
		tm := New(testFS(), Options{})
		require.NoError(t, tm.scanTopics())

		assert.Equal(t, []string{"ordering", "registration"}, tm.ListTopics())

		topic, ok := tm.GetTopic("registration")
		require.True(t, ok)
		assert.Equal(t, "Register from init.", topic.Content)
		assert.Equal(t, "help/registration.txt", topic.FilePath)

		_, ok = tm.GetTopic("ignored")
		assert.False(t, ok)
	})

	t.Run("custom_extensions", func(t *testing.T) {
		tm := New(testFS(), Options{Extensions: []string{".json"}})
		require.NoError(t, tm.scanTopics())
		assert.Equal(t, []string{"ignored"}, tm.ListTopics())
	})

	t.Run("flag_style_lookup", func(t *testing.T) {
		tm := New(testFS(), Options{})
		require.NoError(t, tm.scanTopics())
		_, ok := tm.GetTopic("--ordering")
		assert.True(t, ok)
	})
}

func newRoot(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	root := &cobra.Command{Use: "app", Short: "test app"}
	root.AddCommand(&cobra.Command{Use: "list", Short: "List things", Run: func(*cobra.Command, []string) {}})

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)

	_, err := Initialize(root, testFS(), Options{})
	require.NoError(t, err)
	return root, &out
}

func TestHelpTopicsListing(t *testing.T) {
	root, out := newRoot(t)
	root.SetArgs([]string{"help", "topics"})

	require.NoError(t, root.Execute())

	assert.Contains(t, out.String(), "Available help topics:")
	assert.Contains(t, out.String(), "  ordering")
	assert.Contains(t, out.String(), "app help <topic>")
}

func TestHelpShowsTopic(t *testing.T) {
	root, out := newRoot(t)
	root.SetArgs([]string{"help", "ordering"})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "Init order is unspecified.")
}

func TestHelpFallsBackToCommandHelp(t *testing.T) {
	root, out := newRoot(t)
	root.SetArgs([]string{"help", "list"})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "List things")
}

func TestRenderers(t *testing.T) {
	plain := &PlainRenderer{}
	assert.Equal(t, "# x", plain.Render("# x", ".md"))

	g := &GlamourRenderer{Style: "notty", Width: 40}
	assert.Equal(t, "plain text", g.Render("plain text", ".txt"))
	assert.Contains(t, g.Render("# Title\n\nbody", ".md"), "body")
}
