package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNgrams(t *testing.T) {
	terms := ngrams("apply annual leave")
	assert.Equal(t, []string{"apply", "annual", "leave", "apply annual", "annual leave"}, terms)
}

func TestFitTFIDF_Vectorize(t *testing.T) {
	v := fitTFIDF([]string{
		"leave balance remaining days",
		"compliance policy due date",
		"course learning recommendation",
	})

	vec := v.vectorize("leave balance")
	var norm float64
	for _, x := range vec {
		norm += x * x
	}
	assert.InDelta(t, 1.0, norm, 1e-9)
}

func TestVectorize_UnseenTermsIgnored(t *testing.T) {
	v := fitTFIDF([]string{"leave balance"})
	vec := v.vectorize("zebra quantum")
	for _, x := range vec {
		assert.Zero(t, x)
	}
}

func TestFitTFIDF_EmptyCorpus(t *testing.T) {
	v := fitTFIDF(nil)
	assert.Empty(t, v.vectorize("anything"))
}

func TestCosineNormalized(t *testing.T) {
	v := fitTFIDF([]string{"leave balance days", "policy due date"})

	a := v.vectorize("leave balance days")
	b := v.vectorize("leave balance days")
	c := v.vectorize("policy due date")

	assert.InDelta(t, 1.0, cosineNormalized(a, b), 1e-9)
	assert.Less(t, cosineNormalized(a, c), 0.1)
}

func TestCosine32(t *testing.T) {
	assert.InDelta(t, 1.0, cosine32([]float32{1, 2, 3}, []float32{1, 2, 3}), 1e-6)
	assert.InDelta(t, 0.0, cosine32([]float32{1, 0}, []float32{0, 1}), 1e-6)
	assert.Zero(t, cosine32([]float32{1, 2}, []float32{1, 2, 3}))
	assert.Zero(t, cosine32([]float32{0, 0}, []float32{1, 2}))
	assert.Zero(t, cosine32(nil, nil))
}
