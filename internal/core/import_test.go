package core

import (
	"bytes"
	"strings"
	"testing"

	"github.com/inovacc/sshcm/internal/encoding"
	"github.com/inovacc/sshcm/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportImportRoundTrip(t *testing.T) {
	src := openTestStore(t)

	mustAdd(t, src, "home", "-host", "127.0.0.1", "-user", "me", "-description", "loopback")
	mustAdd(t, src, "work", "-host", "10.1.2.3", "-args", "-p 2222", "-binary", "mosh")
	mustAdd(t, src, "jump", "-host", "bastion.example", "-identity", "/k", "-command", "uptime")

	var buf bytes.Buffer

	require.NoError(t, Export(src, &buf))

	dst := openTestStore(t)

	result, err := Import(dst, &buf)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Inserted)
	assert.Zero(t, result.Updated)
	assert.Zero(t, result.Skipped)

	want, err := src.ListConnections()
	require.NoError(t, err)

	for _, expected := range want {
		got, err := dst.GetConnectionByNickname(expected.Nickname)
		require.NoError(t, err)
		require.NotNil(t, got, "nickname %s", expected.Nickname)

		assert.Equal(t, expected.Host, got.Host)
		assert.Equal(t, model.Deref(expected.User), model.Deref(got.User))
		assert.Equal(t, model.Deref(expected.Description), model.Deref(got.Description))
		assert.Equal(t, model.Deref(expected.Args), model.Deref(got.Args))
		assert.Equal(t, model.Deref(expected.Identity), model.Deref(got.Identity))
		assert.Equal(t, model.Deref(expected.Command), model.Deref(got.Command))
		assert.Equal(t, model.Deref(expected.Binary), model.Deref(got.Binary))
	}
}

func TestImportEmptyInput(t *testing.T) {
	st := openTestStore(t)

	_, err := Import(st, strings.NewReader(""))
	assert.ErrorIs(t, err, encoding.ErrMissingHeader)
}

func TestImportColumnOrderIndependent(t *testing.T) {
	st := openTestStore(t)

	input := "host,user,nickname\nh.example,me,shuffled\n"

	result, err := Import(st, strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 1, result.Inserted)

	c, err := st.GetConnectionByNickname("shuffled")
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "h.example", c.Host)
	assert.Equal(t, "me", model.Deref(c.User))
}

func TestImportSkipsRowWithoutNickname(t *testing.T) {
	st := openTestStore(t)

	input := "nickname,host\n,ghost.example\nkept,real.example\n"

	result, err := Import(st, strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 1, result.Inserted)
	assert.Equal(t, 1, result.Skipped)
	require.Len(t, result.Notes, 1)
	assert.Contains(t, result.Notes[0], "nickname")

	c, err := st.GetConnectionByNickname("kept")
	require.NoError(t, err)
	assert.NotNil(t, c)
}

func TestImportMalformedLineContinues(t *testing.T) {
	st := openTestStore(t)

	input := "nickname,host\n\"broken,quote.example\nfine,ok.example\n"

	result, err := Import(st, strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 1, result.Inserted)
	assert.Equal(t, 1, result.Skipped)

	c, err := st.GetConnectionByNickname("fine")
	require.NoError(t, err)
	assert.NotNil(t, c)
}

func TestImportUpdatesExistingNickname(t *testing.T) {
	st := openTestStore(t)

	mustAdd(t, st, "web", "-host", "old.example", "-user", "root")

	input := "nickname,host,description\nweb,new.example,refreshed\n"

	result, err := Import(st, strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 1, result.Updated)
	assert.Zero(t, result.Inserted)

	c, err := st.GetConnectionByNickname("web")
	require.NoError(t, err)
	assert.Equal(t, "new.example", c.Host)
	assert.Equal(t, "refreshed", model.Deref(c.Description))

	// Columns the row left empty keep their stored values.
	assert.Equal(t, "root", model.Deref(c.User))
}

func TestImportRequestsFreeID(t *testing.T) {
	st := openTestStore(t)

	input := "id,nickname,host\n40,forty,h.example\n"

	result, err := Import(st, strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 1, result.Inserted)

	c, err := st.GetConnectionByNickname("forty")
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, int64(40), c.ID)
}

func TestImportTakenIDFallsBack(t *testing.T) {
	st := openTestStore(t)

	mustAdd(t, st, "first", "-host", "h", "-id", "5")

	input := "id,nickname,host\n5,second,h2\n"

	result, err := Import(st, strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 1, result.Inserted)
	require.Len(t, result.Notes, 1)
	assert.Contains(t, result.Notes[0], "taken")

	c, err := st.GetConnectionByNickname("second")
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.NotEqual(t, int64(5), c.ID)
}

func TestExportRawValues(t *testing.T) {
	st := openTestStore(t)

	// A stored default must not leak into the export.
	require.NoError(t, st.SetDefaults(map[string]string{"user": "bob"}))

	mustAdd(t, st, "raw", "-host", "h.example")

	var buf bytes.Buffer

	require.NoError(t, Export(st, &buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "id,nickname,host,user,description,args,identity,command,binary", lines[0])
	assert.Equal(t, "1,raw,h.example,,,,,,", lines[1])
}
