package window

import "testing"

func BenchmarkResolve(b *testing.B) {
	params := make([]Params, 0, 1000)
	for i := 0; i < 1000; i++ {
		params = append(params, Params{
			TotalExtent:     321,
			LowerLimit:      i % 150,
			UpperLimit:      321 - i%170,
			ViewportCenter:  i % 321,
			RequestedLength: i % 90,
		})
	}
	r := New(VariantB())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = r.Resolve(params[i%len(params)])
	}
}

func BenchmarkNormalize(b *testing.B) {
	p := Params{TotalExtent: 321, LowerLimit: 200, UpperLimit: 99, ViewportCenter: 400, RequestedLength: -5}
	pol := VariantA()
	for i := 0; i < b.N; i++ {
		_ = Normalize(p, pol)
	}
}
