package engine

import "math"

// tfidfVectorizer holds a vocabulary of unigrams and bigrams fitted over the
// corpus document texts, with smoothed inverse document frequencies.
// Queries are vectorized against the fitted vocabulary; unseen terms are
// ignored.
type tfidfVectorizer struct {
	vocab map[string]int
	idf   []float64
}

// ngrams returns the unigram and bigram terms of the given text.
func ngrams(text string) []string {
	tokens := Tokenize(text)
	terms := make([]string, 0, len(tokens)*2)
	terms = append(terms, tokens...)
	for i := 0; i+1 < len(tokens); i++ {
		terms = append(terms, tokens[i]+" "+tokens[i+1])
	}
	return terms
}

// fitTFIDF builds a vectorizer over the document texts. Degenerate input
// (no texts, or all texts empty) yields an empty vocabulary; vectorizing
// against it produces zero vectors, which cosine treats as no similarity.
func fitTFIDF(texts []string) *tfidfVectorizer {
	v := &tfidfVectorizer{vocab: make(map[string]int)}

	docFreq := make(map[string]int)
	for _, text := range texts {
		seen := make(map[string]struct{})
		for _, term := range ngrams(text) {
			if _, ok := seen[term]; ok {
				continue
			}
			seen[term] = struct{}{}
			docFreq[term]++
			if _, ok := v.vocab[term]; !ok {
				v.vocab[term] = len(v.vocab)
			}
		}
	}

	n := float64(len(texts))
	v.idf = make([]float64, len(v.vocab))
	for term, idx := range v.vocab {
		// Smoothed idf, so terms present in every document keep a
		// small positive weight instead of vanishing.
		v.idf[idx] = math.Log((1+n)/(1+float64(docFreq[term]))) + 1
	}
	return v
}

// vectorize produces the l2-normalized tf-idf vector of the given text.
func (v *tfidfVectorizer) vectorize(text string) []float64 {
	vec := make([]float64, len(v.vocab))
	if len(v.vocab) == 0 {
		return vec
	}

	for _, term := range ngrams(text) {
		if idx, ok := v.vocab[term]; ok {
			vec[idx]++
		}
	}

	var norm float64
	for idx := range vec {
		vec[idx] *= v.idf[idx]
		norm += vec[idx] * vec[idx]
	}
	if norm == 0 {
		return vec
	}

	norm = math.Sqrt(norm)
	for idx := range vec {
		vec[idx] /= norm
	}
	return vec
}

// cosineNormalized computes cosine similarity between two l2-normalized
// vectors of equal length.
func cosineNormalized(a, b []float64) float64 {
	var dot float64
	for i := range a {
		dot += a[i] * b[i]
	}
	return dot
}

// cosine32 computes cosine similarity between two raw float32 vectors, as
// returned by the embedding provider. Zero vectors score zero.
func cosine32(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
