package money

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cases := map[string]int64{
		"199.00": 19900,
		"199":    19900,
		"0.99":   99,
		"150.5":  15050,
		"-12.34": -1234,
		"0":      0,
	}
	for in, want := range cases {
		got, err := Parse(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got.Cents(), in)
	}
}

func TestParse_Rejects(t *testing.T) {
	for _, in := range []string{"", "abc", "10.005", "1.2.3"} {
		_, err := Parse(in)
		assert.Error(t, err, in)
	}
}

// A 3-night stay at 199.00 must come out at exactly 597.00 with no float
// drift, and 150.00 over 3 nights at 450.00.
func TestMul_Exact(t *testing.T) {
	assert.Equal(t, "597.00", MustParse("199.00").Mul(3).String())
	assert.Equal(t, "450.00", MustParse("150.00").Mul(3).String())
	assert.Equal(t, "0.00", MustParse("199.00").Mul(0).String())
	assert.Equal(t, "-199.00", MustParse("199.00").Mul(-1).String())
}

func TestString(t *testing.T) {
	assert.Equal(t, "0.05", FromCents(5).String())
	assert.Equal(t, "-0.50", FromCents(-50).String())
	assert.Equal(t, "1250.00", FromCents(125000).String())
}

func TestJSONRoundTrip(t *testing.T) {
	b, err := json.Marshal(MustParse("450.00"))
	require.NoError(t, err)
	assert.Equal(t, `"450.00"`, string(b))

	var a Amount
	require.NoError(t, json.Unmarshal([]byte(`"199.00"`), &a))
	assert.Equal(t, MustParse("199.00"), a)

	// Bare numbers from clients are accepted too.
	require.NoError(t, json.Unmarshal([]byte(`150.5`), &a))
	assert.Equal(t, MustParse("150.50"), a)
}

func TestScan(t *testing.T) {
	var a Amount
	require.NoError(t, a.Scan("597.00"))
	assert.Equal(t, MustParse("597.00"), a)

	require.NoError(t, a.Scan([]byte("12.30")))
	assert.Equal(t, MustParse("12.30"), a)

	require.NoError(t, a.Scan(float64(199.00)))
	assert.Equal(t, MustParse("199.00"), a)

	assert.Error(t, a.Scan(struct{}{}))
}
