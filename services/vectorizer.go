package services

import (
	"math"
	"sort"
	"strings"
	"unicode"
)

// sparseVec is a term-index -> weight vector. Document vectors produced by
// the vectorizer are L2-normalized.
type sparseVec map[int]float64

// tfidfVectorizer fits a vocabulary and inverse-document-frequency weights
// over a corpus. A fresh instance is fitted on every recommendation call;
// no vocabulary persists across calls.
type tfidfVectorizer struct {
	vocab map[string]int
	idf   []float64
}

// fitTransform learns the vocabulary and IDF from docs and returns one
// L2-normalized TF-IDF vector per document. IDF uses the smoothed form
// ln((1+n)/(1+df)) + 1.
func (v *tfidfVectorizer) fitTransform(docs []string) []sparseVec {
	v.vocab = make(map[string]int)

	counts := make([]map[int]int, len(docs))
	df := make(map[int]int)
	for i, doc := range docs {
		counts[i] = make(map[int]int)
		for _, tok := range tokenize(doc) {
			idx, ok := v.vocab[tok]
			if !ok {
				idx = len(v.vocab)
				v.vocab[tok] = idx
			}
			counts[i][idx]++
		}
		for idx := range counts[i] {
			df[idx]++
		}
	}

	n := float64(len(docs))
	v.idf = make([]float64, len(v.vocab))
	for idx := range v.idf {
		v.idf[idx] = math.Log((1+n)/(1+float64(df[idx]))) + 1
	}

	vecs := make([]sparseVec, len(docs))
	for i, c := range counts {
		vec := make(sparseVec, len(c))
		for idx, tf := range c {
			vec[idx] = float64(tf) * v.idf[idx]
		}
		l2Normalize(vec)
		vecs[i] = vec
	}
	return vecs
}

// tokenize lowercases, splits on non-alphanumerics, and drops stopwords and
// single-character tokens.
func tokenize(s string) []string {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	var out []string
	for _, f := range fields {
		if len(f) < 2 {
			continue
		}
		if _, stop := englishStopwords[f]; stop {
			continue
		}
		out = append(out, f)
	}
	return out
}

func l2Normalize(v sparseVec) {
	var sum float64
	for _, w := range v {
		sum += w * w
	}
	if sum == 0 {
		return
	}
	inv := 1 / math.Sqrt(sum)
	for idx, w := range v {
		v[idx] = w * inv
	}
}

// meanVector averages a set of vectors in the shared index space. The result
// is not renormalized; cosine handles the norm.
func meanVector(vecs []sparseVec) sparseVec {
	out := make(sparseVec)
	if len(vecs) == 0 {
		return out
	}
	for _, v := range vecs {
		for idx, w := range v {
			out[idx] += w
		}
	}
	inv := 1 / float64(len(vecs))
	for idx := range out {
		out[idx] *= inv
	}
	return out
}

// cosineSparse computes cosine similarity between two sparse vectors.
// Either vector being zero yields 0.
func cosineSparse(a, b sparseVec) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	// Iterate the smaller map.
	if len(b) < len(a) {
		a, b = b, a
	}
	var dot float64
	for idx, w := range a {
		if bw, ok := b[idx]; ok {
			dot += w * bw
		}
	}
	na := sparseNorm(a)
	nb := sparseNorm(b)
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (na * nb)
}

func sparseNorm(v sparseVec) float64 {
	var sum float64
	for _, w := range v {
		sum += w * w
	}
	return math.Sqrt(sum)
}

// nearestNeighbors returns the indices of the k corpus vectors closest to
// query by cosine distance, ascending. Ties keep corpus order (stable sort).
func nearestNeighbors(query sparseVec, corpus []sparseVec, k int) []int {
	type cand struct {
		idx  int
		dist float64
	}
	cands := make([]cand, len(corpus))
	for i, v := range corpus {
		cands[i] = cand{idx: i, dist: 1 - cosineSparse(query, v)}
	}
	sort.SliceStable(cands, func(i, j int) bool {
		return cands[i].dist < cands[j].dist
	})
	if k > len(cands) {
		k = len(cands)
	}
	out := make([]int, k)
	for i := 0; i < k; i++ {
		out[i] = cands[i].idx
	}
	return out
}

// cosineDense computes cosine similarity between two equal-length dense
// vectors. Used by the collaborative recommender over rating-matrix rows.
func cosineDense(a, b []float64) float64 {
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

// englishStopwords is the usual English function-word list applied before
// TF-IDF weighting.
var englishStopwords = map[string]struct{}{
	"a": {}, "about": {}, "above": {}, "after": {}, "again": {}, "against": {},
	"all": {}, "am": {}, "an": {}, "and": {}, "any": {}, "are": {}, "as": {},
	"at": {}, "be": {}, "because": {}, "been": {}, "before": {}, "being": {},
	"below": {}, "between": {}, "both": {}, "but": {}, "by": {}, "can": {},
	"could": {}, "did": {}, "do": {}, "does": {}, "doing": {}, "down": {},
	"during": {}, "each": {}, "few": {}, "for": {}, "from": {}, "further": {},
	"had": {}, "has": {}, "have": {}, "having": {}, "he": {}, "her": {},
	"here": {}, "hers": {}, "him": {}, "his": {}, "how": {}, "i": {}, "if": {},
	"in": {}, "into": {}, "is": {}, "it": {}, "its": {}, "itself": {},
	"just": {}, "me": {}, "more": {}, "most": {}, "my": {}, "myself": {},
	"no": {}, "nor": {}, "not": {}, "now": {}, "of": {}, "off": {}, "on": {},
	"once": {}, "only": {}, "or": {}, "other": {}, "our": {}, "ours": {},
	"out": {}, "over": {}, "own": {}, "same": {}, "she": {}, "should": {},
	"so": {}, "some": {}, "such": {}, "than": {}, "that": {}, "the": {},
	"their": {}, "theirs": {}, "them": {}, "themselves": {}, "then": {},
	"there": {}, "these": {}, "they": {}, "this": {}, "those": {},
	"through": {}, "to": {}, "too": {}, "under": {}, "until": {}, "up": {},
	"very": {}, "was": {}, "we": {}, "were": {}, "what": {}, "when": {},
	"where": {}, "which": {}, "while": {}, "who": {}, "whom": {}, "why": {},
	"will": {}, "with": {}, "you": {}, "your": {}, "yours": {},
	"yourself": {}, "yourselves": {},
}
