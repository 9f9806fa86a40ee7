package seqio

import (
	"compress/gzip"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readAll(t *testing.T, r Reader) []Record {
	t.Helper()
	var out []Record
	for {
		rec, err := r.Next(context.Background())
		if errors.Is(err, io.EOF) {
			return out
		}
		require.NoError(t, err)
		out = append(out, rec)
	}
}

func seqs(recs []Record) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Seq
	}
	return out
}

func TestLineReader_SkipsEmptyLines(t *testing.T) {
	in := "AATTGGCC\n\n\r\nCATGG\r\nCCCC"
	recs := readAll(t, NewLineReader(strings.NewReader(in)))
	assert.Equal(t, []string{"AATTGGCC", "CATGG", "CCCC"}, seqs(recs))
	for _, r := range recs {
		assert.Empty(t, r.ID)
	}
}

func TestLineReader_KeepsWhitespaceSymbols(t *testing.T) {
	in := "AC GT \n   \n\tATG\r\n"
	recs := readAll(t, NewLineReader(strings.NewReader(in)))
	assert.Equal(t, []string{"AC GT ", "   ", "\tATG"}, seqs(recs))
}

func TestLineReader_Empty(t *testing.T) {
	assert.Empty(t, readAll(t, NewLineReader(strings.NewReader(""))))
}

func TestLineReader_LongLine(t *testing.T) {
	long := strings.Repeat("ACGT", 1<<16) // 256 KiB, beyond bufio's default
	recs := readAll(t, NewLineReader(strings.NewReader(long+"\n")))
	require.Len(t, recs, 1)
	assert.Len(t, recs[0].Seq, len(long))
}

func TestLineReader_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewLineReader(strings.NewReader("ACGT\n")).Next(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFASTAReader(t *testing.T) {
	in := ">seq1 first record\nACGT\nACGT\n>empty\n>seq2\nNNnn\n"
	recs := readAll(t, NewFASTAReader(strings.NewReader(in)))
	assert.Equal(t, []Record{
		{ID: "seq1", Seq: "ACGTACGT"},
		{ID: "seq2", Seq: "NNnn"},
	}, recs)
}

func TestFASTAReader_Headerless(t *testing.T) {
	recs := readAll(t, NewFASTAReader(strings.NewReader("ACGT\n")))
	assert.Equal(t, []Record{{Seq: "ACGT"}}, recs)
}

func TestNewReader_UnknownFormat(t *testing.T) {
	_, err := NewReader("genbank", strings.NewReader(""))
	assert.Error(t, err)
}

func TestOpen_GzipAndBOM(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "in.txt.gz")
	fh, err := os.Create(fn)
	require.NoError(t, err)
	gw := gzip.NewWriter(fh)
	_, err = gw.Write([]byte("\xEF\xBB\xBFATG\nGGC\n"))
	require.NoError(t, err)
	require.NoError(t, gw.Close())
	require.NoError(t, fh.Close())

	rc, err := Open(fn)
	require.NoError(t, err)
	defer rc.Close()

	recs := readAll(t, NewLineReader(rc))
	assert.Equal(t, []string{"ATG", "GGC"}, seqs(recs))
}

func TestOpenAll_ChainsFilesInOrder(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(a, []byte("A1\nA2\n"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("B1\n"), 0o644))

	r, closer, err := OpenAll(FormatLines, []string{a, b})
	require.NoError(t, err)
	defer closer.Close()
	assert.Equal(t, []string{"A1", "A2", "B1"}, seqs(readAll(t, r)))
}

func TestOpenAll_MissingFile(t *testing.T) {
	_, _, err := OpenAll(FormatLines, []string{filepath.Join(t.TempDir(), "nope.txt")})
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadAllAndSliceReader(t *testing.T) {
	recs, err := ReadAll(context.Background(), NewLineReader(strings.NewReader("A\nC\n")))
	require.NoError(t, err)
	require.Len(t, recs, 2)

	// replay twice from independent readers
	assert.Equal(t, recs, readAll(t, NewSliceReader(recs)))
	assert.Equal(t, recs, readAll(t, NewSliceReader(recs)))
}
