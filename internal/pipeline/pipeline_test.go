package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dnaflow/internal/analysis"
	"dnaflow/internal/queue"
	"dnaflow/internal/seqio"
)

// collect is a Sink that keeps every result.
type collect struct {
	mu  sync.Mutex
	got []analysis.Result
}

func (c *collect) Emit(_ context.Context, r analysis.Result) error {
	c.mu.Lock()
	c.got = append(c.got, r)
	c.mu.Unlock()
	return nil
}

func (c *collect) names() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.got))
	for i, r := range c.got {
		out[i] = r.Name
	}
	sort.Strings(out)
	return out
}

// failingReader yields its records, then err.
type failingReader struct {
	recs []seqio.Record
	err  error
}

func (f *failingReader) Next(context.Context) (seqio.Record, error) {
	if len(f.recs) == 0 {
		return seqio.Record{}, f.err
	}
	r := f.recs[0]
	f.recs = f.recs[1:]
	return r, nil
}

func lines(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "ACGT%s\n", strings.Repeat("G", i%7))
		if i%5 == 0 {
			b.WriteString("\n") // blank lines are not sequences
		}
	}
	return b.String()
}

func TestRun_EverySequenceOnceForAnyWorkerCount(t *testing.T) {
	const n = 200
	for _, k := range []int{1, 2, 3, 8} {
		t.Run(fmt.Sprintf("workers=%d", k), func(t *testing.T) {
			sink := &collect{}
			st, err := Run(context.Background(), Config{Workers: k},
				seqio.NewLineReader(strings.NewReader(lines(n))), sink)
			require.NoError(t, err)

			assert.Equal(t, n, st.Produced)
			assert.Equal(t, n, st.Consumed)
			assert.Equal(t, k, st.Terminated, "every analyzer takes exactly one end-of-stream item")
			require.Len(t, st.PerWorker, k)

			names := sink.names()
			require.Len(t, names, n)
			for i := 1; i < len(names); i++ {
				require.NotEqual(t, names[i-1], names[i], "duplicate delivery")
			}
		})
	}
}

func TestRun_ResultsIndependentOfWorkerCount(t *testing.T) {
	in := "AATTGGCC\nCATGG\nCCCC\n\nGATTACA\nNNAT\n"
	run := func(k int) []analysis.Result {
		sink := &collect{}
		_, err := Run(context.Background(), Config{Workers: k, Capacity: 1},
			seqio.NewLineReader(strings.NewReader(in)), sink)
		require.NoError(t, err)
		sort.Slice(sink.got, func(i, j int) bool { return sink.got[i].Name < sink.got[j].Name })
		return sink.got
	}
	one := run(1)
	require.Len(t, one, 5)
	assert.Equal(t, one, run(2))
	assert.Equal(t, one, run(4))
}

func TestRun_WhitespaceSymbolsAreKept(t *testing.T) {
	sink := &collect{}
	st, err := Run(context.Background(), Config{Workers: 2},
		seqio.NewLineReader(strings.NewReader("AC GT \n   \n\tATG\n")), sink)
	require.NoError(t, err)
	assert.Equal(t, 3, st.Produced)
	assert.Equal(t, 3, st.Consumed)

	got := map[string]analysis.Result{}
	for _, r := range sink.got {
		got[r.Name] = r
	}
	require.Len(t, got, 3)
	assert.Equal(t, "AC GT ", got["DNA1"].Symbols)
	assert.Equal(t, 2, got["DNA1"].BaseCounts[' '])
	assert.Equal(t, "   ", got["DNA2"].Symbols)
	assert.Equal(t, 3, got["DNA2"].BaseCounts[' '])
	assert.Equal(t, "\tATG", got["DNA3"].Symbols)
	assert.Equal(t, 1, got["DNA3"].BaseCounts['\t'])
	assert.Equal(t, 4, got["DNA3"].Length)
}

func TestRun_ReadFailureStillTerminatesConsumers(t *testing.T) {
	boom := errors.New("disk on fire")
	r := &failingReader{
		recs: []seqio.Record{{Seq: "ACGT"}, {Seq: "ATG"}},
		err:  boom,
	}
	sink := &collect{}

	done := make(chan struct{})
	var (
		st  Stats
		err error
	)
	go func() {
		st, err = Run(context.Background(), Config{Workers: 3}, r, sink)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("consumers blocked after producer read failure")
	}

	require.ErrorIs(t, err, ErrRead)
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 2, st.Consumed)
	assert.Equal(t, 3, st.Terminated)
	assert.Len(t, sink.got, 2)
}

func TestRun_AnalysisErrorAbortsRun(t *testing.T) {
	in := strings.Repeat("ACGT\n", 50) + "ACXT\n" + strings.Repeat("ACGT\n", 50)
	_, err := Run(context.Background(), Config{
		Workers:  2,
		Capacity: 4,
		Analysis: analysis.Options{Policy: analysis.PolicyReject},
	}, seqio.NewLineReader(strings.NewReader(in)), &collect{})
	require.ErrorIs(t, err, analysis.ErrUnmappedSymbol)
}

func TestRun_SinkErrorAbortsRun(t *testing.T) {
	stop := errors.New("sink closed")
	sink := SinkFunc(func(context.Context, analysis.Result) error { return stop })
	_, err := Run(context.Background(), Config{Workers: 2, Capacity: 1},
		seqio.NewLineReader(strings.NewReader(lines(100))), sink)
	assert.ErrorIs(t, err, stop)
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	// A sink that blocks until cancellation keeps the run busy.
	sink := SinkFunc(func(ctx context.Context, _ analysis.Result) error {
		<-ctx.Done()
		return ctx.Err()
	})
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()
	_, err := Run(ctx, Config{Workers: 2, Capacity: 2},
		seqio.NewLineReader(strings.NewReader(lines(1000))), sink)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_EmptyInput(t *testing.T) {
	st, err := Run(context.Background(), Config{Workers: 4},
		seqio.NewLineReader(strings.NewReader("\n\n")), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, st.Consumed)
	assert.Equal(t, 4, st.Terminated)
}

func TestRun_NamesUnlabelledRecords(t *testing.T) {
	sink := &collect{}
	_, err := Run(context.Background(), Config{Workers: 1, NamePrefix: "seq"},
		seqio.NewLineReader(strings.NewReader("A\nC\nG\n")), sink)
	require.NoError(t, err)
	assert.Equal(t, []string{"seq1", "seq2", "seq3"}, sink.names())
}

func TestSource_PutsOneEndOfStreamPerConsumerAtTail(t *testing.T) {
	ctx := context.Background()
	q := queue.New[Item](0)
	src := &Source{}
	err := src.Run(ctx, seqio.NewLineReader(strings.NewReader("ACGT\nTTTT\n")), q, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, src.Produced())
	require.Equal(t, 5, q.Len())

	var kinds []Kind
	for q.Len() > 0 {
		it, err := q.Take(ctx)
		require.NoError(t, err)
		kinds = append(kinds, it.Kind)
	}
	assert.Equal(t, []Kind{KindSequence, KindSequence, KindEndOfStream, KindEndOfStream, KindEndOfStream}, kinds)
}

func TestAnalyzer_StopsOnItsOwnEndOfStream(t *testing.T) {
	ctx := context.Background()
	q := queue.New[Item](0)
	require.NoError(t, q.Put(ctx, EndOfStream()))
	require.NoError(t, q.Put(ctx, EndOfStream()))

	a := &Analyzer{ID: 1}
	require.NoError(t, a.Run(ctx, q, Discard))
	assert.True(t, a.Finished())
	assert.Equal(t, 1, q.Len(), "the second end-of-stream item belongs to another analyzer")
}

func TestAnalyzer_RejectsZeroItem(t *testing.T) {
	ctx := context.Background()
	q := queue.New[Item](0)
	require.NoError(t, q.Put(ctx, Item{}))
	err := (&Analyzer{ID: 7}).Run(ctx, q, Discard)
	assert.ErrorIs(t, err, ErrInvalidItem)
}

