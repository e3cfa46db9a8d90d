package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterArgs_SeparateValue(t *testing.T) {
	args := []string{"-d", "shop.db", "-x", "nope", "-l", "debug"}
	got := FilterArgs(args, []string{"-d", "-l"})
	assert.Equal(t, []string{"-d", "shop.db", "-l", "debug"}, got)
}

func TestFilterArgs_EqualsForm(t *testing.T) {
	args := []string{"--dsn=shop.db", "-l=warn", "--other=zzz"}
	got := FilterArgs(args, []string{"--dsn", "-l"})
	assert.Equal(t, []string{"--dsn=shop.db", "-l=warn"}, got)
}

func TestFilterArgs_FlagWithoutValue(t *testing.T) {
	args := []string{"-v", "-d", "shop.db"}
	got := FilterArgs(args, []string{"-v"})
	assert.Equal(t, []string{"-v"}, got)
}

func TestFilterArgs_EmptyInput(t *testing.T) {
	got := FilterArgs(nil, []string{"-d"})
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestJsonConfigFlags_ShortFlag(t *testing.T) {
	old := os.Args
	t.Cleanup(func() { os.Args = old })

	os.Args = []string{"shopkeeper", "-c", "conf.json"}
	assert.Equal(t, "conf.json", JsonConfigFlags())
}

func TestJsonConfigFlags_LongFlag(t *testing.T) {
	old := os.Args
	t.Cleanup(func() { os.Args = old })

	os.Args = []string{"shopkeeper", "-config=conf.json"}
	assert.Equal(t, "conf.json", JsonConfigFlags())
}

func TestJsonConfigFlags_Absent(t *testing.T) {
	old := os.Args
	t.Cleanup(func() { os.Args = old })

	os.Args = []string{"shopkeeper", "-d", "shop.db"}
	assert.Equal(t, "", JsonConfigFlags())
}
