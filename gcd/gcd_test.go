package gcd_test

import (
	"encoding/json"
	"math"
	"math/rand"
	"sync"
	"testing"

	"github.com/but80/gcd825/gcd"
	"github.com/but80/gcd825/gcd/enums"
	pb "github.com/but80/gcd825/pb/gcd"
	"github.com/golang/protobuf/proto"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type facade struct {
	two        func(a, b int32) (int32, error)
	three      func(a, b, c int32) (int32, error)
	many       func(a, b int32, rest ...int32) (int32, error)
	twoTimed   func(a, b int32) (int32, int64, error)
	threeTimed func(a, b, c int32) (int32, int64, error)
	manyTimed  func(a, b int32, rest ...int32) (int32, int64, error)
}

var facades = map[string]facade{
	"Euclidean": {
		gcd.Euclidean, gcd.Euclidean3, gcd.EuclideanN,
		gcd.EuclideanTimed, gcd.Euclidean3Timed, gcd.EuclideanNTimed,
	},
	"Binary": {
		gcd.Binary, gcd.Binary3, gcd.BinaryN,
		gcd.BinaryTimed, gcd.Binary3Timed, gcd.BinaryNTimed,
	},
}

func TestScenarios(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	n, err := gcd.Euclidean(48, 18)
	require.NoError(err)
	assert.Equal(int32(6), n)

	n, err = gcd.Euclidean(0, 5)
	require.NoError(err)
	assert.Equal(int32(5), n)

	n, err = gcd.Binary(48, 18)
	require.NoError(err)
	assert.Equal(int32(6), n)

	n, err = gcd.Euclidean3(12, 18, 24)
	require.NoError(err)
	assert.Equal(int32(6), n)

	n, err = gcd.Euclidean(-48, 18)
	require.NoError(err)
	assert.Equal(int32(6), n)

	_, err = gcd.Euclidean(0, 0)
	assert.True(errors.Is(err, gcd.ErrAllZero))

	_, err = gcd.Euclidean(math.MinInt32, 10)
	assert.True(errors.Is(err, gcd.ErrOutOfRange))
}

func TestFacadeErrors(t *testing.T) {
	for name, f := range facades {
		f := f
		t.Run(name, func(t *testing.T) {
			check := func(err, want error) {
				t.Helper()
				assert.True(t, errors.Is(err, want), "got %v, want %v", err, want)
			}
			var err error
			_, err = f.two(0, 0)
			check(err, gcd.ErrAllZero)
			_, err = f.three(0, 0, 0)
			check(err, gcd.ErrAllZero)
			_, err = f.many(0, 0, 0, 0, 0)
			check(err, gcd.ErrAllZero)
			_, _, err = f.twoTimed(0, 0)
			check(err, gcd.ErrAllZero)
			_, _, err = f.threeTimed(0, 0, 0)
			check(err, gcd.ErrAllZero)
			_, _, err = f.manyTimed(0, 0)
			check(err, gcd.ErrAllZero)

			_, err = f.two(7, math.MinInt32)
			check(err, gcd.ErrOutOfRange)
			_, err = f.three(1, 2, math.MinInt32)
			check(err, gcd.ErrOutOfRange)
			_, err = f.many(1, 2, 3, math.MinInt32)
			check(err, gcd.ErrOutOfRange)
			_, _, err = f.twoTimed(math.MinInt32, 0)
			check(err, gcd.ErrOutOfRange)
			_, _, err = f.threeTimed(0, math.MinInt32, 0)
			check(err, gcd.ErrOutOfRange)
			_, _, err = f.manyTimed(1, 1, 1, 1, math.MinInt32)
			check(err, gcd.ErrOutOfRange)
		})
	}
}

func randomOperand(r *rand.Rand) int32 {
	if r.Intn(5) == 0 {
		return 0
	}
	n := int32(r.Intn(1 << 12))
	if r.Intn(2) == 0 {
		n *= int32(1 << uint(r.Intn(12)))
	}
	if r.Intn(2) == 0 {
		n = -n
	}
	return n
}

func TestProperties(t *testing.T) {
	r := rand.New(rand.NewSource(18))
	e, b := facades["Euclidean"], facades["Binary"]
	abs := func(n int32) int32 {
		if n < 0 {
			return -n
		}
		return n
	}
	for i := 0; i < 5000; i++ {
		x, y, z := randomOperand(r), randomOperand(r), randomOperand(r)
		if x == 0 {
			x = 1
		}
		if y == 0 && z == 0 {
			z = 1
		}

		xy, err := e.two(x, y)
		require.NoError(t, err)

		// cross-algorithm equivalence
		got, err := b.two(x, y)
		require.NoError(t, err)
		require.Equal(t, xy, got)

		// commutativity
		yx, err := e.two(y, x)
		require.NoError(t, err)
		require.Equal(t, xy, yx)

		// identity with zero
		x0, err := b.two(x, 0)
		require.NoError(t, err)
		require.Equal(t, abs(x), x0)

		// associativity
		left, err := e.two(xy, z)
		require.NoError(t, err)
		yz, err := e.two(y, z)
		require.NoError(t, err)
		right, err := e.two(x, yz)
		require.NoError(t, err)
		require.Equal(t, left, right)

		xyz, err := b.three(x, y, z)
		require.NoError(t, err)
		require.Equal(t, left, xyz)
		xyz, err = e.many(x, y, z)
		require.NoError(t, err)
		require.Equal(t, left, xyz)

		require.LessOrEqual(t, xyz, maxAbs(x, y, z))
		require.Greater(t, xyz, int32(0))
	}
}

func maxAbs(ns ...int32) int32 {
	m := int32(0)
	for _, n := range ns {
		if n < 0 {
			n = -n
		}
		if m < n {
			m = n
		}
	}
	return m
}

func TestTimedMatchesUntimed(t *testing.T) {
	for name, f := range facades {
		f := f
		t.Run(name, func(t *testing.T) {
			want, err := f.two(1071, 462)
			require.NoError(t, err)
			got, ms, err := f.twoTimed(1071, 462)
			require.NoError(t, err)
			assert.Equal(t, want, got)
			assert.GreaterOrEqual(t, ms, int64(0))

			want, err = f.three(-90, 120, 75)
			require.NoError(t, err)
			got, ms, err = f.threeTimed(-90, 120, 75)
			require.NoError(t, err)
			assert.Equal(t, want, got)
			assert.GreaterOrEqual(t, ms, int64(0))

			rest := []int32{math.MaxInt32, 0, -math.MaxInt32}
			want, err = f.many(math.MaxInt32, 0, rest...)
			require.NoError(t, err)
			got, ms, err = f.manyTimed(math.MaxInt32, 0, rest...)
			require.NoError(t, err)
			assert.Equal(t, int32(math.MaxInt32), want)
			assert.Equal(t, want, got)
			assert.GreaterOrEqual(t, ms, int64(0))
		})
	}
}

func TestConcurrentCallers(t *testing.T) {
	var wg sync.WaitGroup
	for i := 1; i <= 32; i++ {
		i := int32(i)
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := int32(1); j <= 200; j++ {
				e, err := gcd.EuclideanN(i*j*6, i*j*10, i*j*14)
				assert.NoError(t, err)
				b, err := gcd.BinaryN(i*j*6, i*j*10, i*j*14)
				assert.NoError(t, err)
				assert.Equal(t, i*j*2, e)
				assert.Equal(t, e, b)
			}
		}()
	}
	wg.Wait()
}

func TestCalculate(t *testing.T) {
	operands := []int32{12, 18, 24}
	for _, alg := range enums.Algorithms {
		r, err := gcd.Calculate(alg, true, operands)
		require.NoError(t, err)
		assert.Equal(t, alg, r.Algorithm)
		assert.Equal(t, int32(6), r.GCD)
		assert.True(t, r.Timed)
		assert.GreaterOrEqual(t, r.Milliseconds, int64(0))
	}

	r, err := gcd.Calculate(enums.Algorithm_Binary, false, operands)
	require.NoError(t, err)
	operands[0] = 1
	assert.Equal(t, []int32{12, 18, 24}, r.Operands, "operands are copied")

	_, err = gcd.Calculate(enums.Algorithm_Euclidean, false, []int32{5})
	assert.True(t, errors.Is(err, gcd.ErrTooFewOperands))
	_, err = gcd.Calculate(enums.Algorithm(5), false, []int32{5, 10})
	assert.True(t, errors.Is(err, enums.ErrUnknownAlgorithm))
	_, err = gcd.Calculate(enums.Algorithm_Binary, true, []int32{0, 0, 0})
	assert.True(t, errors.Is(err, gcd.ErrAllZero))
}

func TestResultString(t *testing.T) {
	r := &gcd.Result{
		Algorithm:    enums.Algorithm_Euclidean,
		Operands:     []int32{48, -18},
		GCD:          6,
		Timed:        true,
		Milliseconds: 3,
	}
	want := "GCD Result:\n" +
		"\tAlgorithm: Euclidean(0x00)\n" +
		"\tOperands: 48, -18\n" +
		"\tGCD: 6\n" +
		"\tElapsed: 3 ms"
	assert.Equal(t, want, r.String())

	r.Timed = false
	assert.NotContains(t, r.String(), "Elapsed")
}

func TestResultJSON(t *testing.T) {
	r, err := gcd.Calculate(enums.Algorithm_Binary, false, []int32{48, 18})
	require.NoError(t, err)
	b, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{"algorithm":"Binary(0x01)","operands":[48,18],"gcd":6,"timed":false,"elapsed_ms":0}`, string(b))
}

func TestResultToPB(t *testing.T) {
	r, err := gcd.Calculate(enums.Algorithm_Binary, false, []int32{-48, 18, 30})
	require.NoError(t, err)

	b, err := proto.Marshal(r.ToPB())
	require.NoError(t, err)
	var got pb.Result
	require.NoError(t, proto.Unmarshal(b, &got))

	want := &pb.Result{
		Algorithm: pb.Algorithm_BINARY,
		Operands:  []int32{-48, 18, 30},
		Gcd:       6,
	}
	if diff := cmp.Diff(want, &got, cmpopts.IgnoreUnexported(pb.Result{}), cmpopts.IgnoreFields(pb.Result{}, "XXX_sizecache")); diff != "" {
		t.Errorf("ToPB mismatch (-want +got):\n%s", diff)
	}
}
