package language

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// WriteListing writes ranked n-gram listings as text, one section per order:
//
//	\data\
//	ngram 1=5
//
//	\1-grams:
//	0.333333	the
//	...
//
//	\end\
//
// Listings are query results (possibly cut off by topK), not a saved model.
func WriteListing(w io.Writer, listings map[Order][]Entry) error {
	orders := make([]Order, 0, len(listings))
	for o := Unigram; o <= Trigram; o++ {
		if _, ok := listings[o]; ok {
			orders = append(orders, o)
		}
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "\\data\\")
	for _, o := range orders {
		fmt.Fprintf(bw, "ngram %d=%d\n", o, len(listings[o]))
	}
	fmt.Fprintln(bw)

	for _, o := range orders {
		fmt.Fprintf(bw, "\\%d-grams:\n", o)
		for _, e := range listings[o] {
			fmt.Fprintf(bw, "%.6f\t%s\n", e.Prob, strings.Join(e.NGram, " "))
		}
		fmt.Fprintln(bw)
	}

	fmt.Fprintln(bw, "\\end\\")
	return bw.Flush()
}
