package precise

import "testing"

func TestAppendExact(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			neg   bool
			num   uint64
			scale int
			want  string
		}{
			{false, 0, 1, "0.0"},
			{true, 0, 1, "-0.0"},
			{false, 0, 5, "0.0"},
			{false, 1, 1, "0.1"},
			{false, 1, 5, "0.00001"},
			{true, 1, 5, "-0.00001"},
			{false, 10, 1, "1.0"},
			{false, 100000, 5, "1.0"},
			{false, 123450, 5, "1.2345"},
			{true, 123450, 5, "-1.2345"},
			{false, 900000000, 5, "9000.0"},
			{false, 900000001, 5, "9000.00001"},
			{false, 99999, 5, "0.99999"},
			{false, 18446744073709551615, 3, "18446744073709551.615"},
			{false, 18446744073709551615, 19, "1.8446744073709551615"},
			{false, 18446744073709551615, 20, "0.18446744073709551615"},
			{false, 18446744073709551615, 25, "0.0000018446744073709551615"},
		}
		for _, tt := range tests {
			num := getBint()
			num.setUint64(tt.num)
			got := string(appendExact(nil, tt.neg, num, tt.scale))
			putBint(num)
			if got != tt.want {
				t.Errorf("appendExact(%v, %v, %v) = %q, want %q", tt.neg, tt.num, tt.scale, got, tt.want)
			}
		}
	})

	t.Run("prefix", func(t *testing.T) {
		num := getBint()
		defer putBint(num)
		num.setUint64(25)
		dst := []byte("value: ")
		got := string(appendExact(dst, true, num, 3))
		want := "value: -0.025"
		if got != want {
			t.Errorf("appendExact(%q, true, 25, 3) = %q, want %q", dst, got, want)
		}
	})
}

func BenchmarkFloat64(b *testing.B) {
	for _, f := range []float64{0.1, 1e300, 5e-324} {
		b.Run(Float64(f)[:8], func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = Float64(f)
			}
		})
	}
}
