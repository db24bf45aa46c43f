package slider

import (
	"errors"
	"testing"
)

func TestExpand(t *testing.T) {
	tests := []struct {
		name    string
		min     float64
		max     float64
		step    float64
		want    []float64
		wantErr error
	}{
		{
			name: "max 不是步长整数倍时追加 max",
			min:  0, max: 10, step: 3,
			want: []float64{0, 3, 6, 9, 10},
		},
		{
			name: "max 恰好可达时不重复追加",
			min:  0, max: 9, step: 3,
			want: []float64{0, 3, 6, 9},
		},
		{
			name: "步长为 1",
			min:  1, max: 4, step: 1,
			want: []float64{1, 2, 3, 4},
		},
		{
			name: "负数区间",
			min:  -10, max: 10, step: 5,
			want: []float64{-10, -5, 0, 5, 10},
		},
		{
			name: "步长大于区间",
			min:  0, max: 2, step: 5,
			want: []float64{0, 2},
		},
		{
			name: "缺少步长回退为 [min, max]",
			min:  0, max: 10, step: 0,
			want:    []float64{0, 10},
			wantErr: ErrMissingStep,
		},
		{
			name: "负步长回退为 [min, max]",
			min:  0, max: 10, step: -1,
			want:    []float64{0, 10},
			wantErr: ErrMissingStep,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq, err := Expand(tt.min, tt.max, tt.step)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Expand() error = %v, want %v", err, tt.wantErr)
			}
			if seq.Len() != len(tt.want) {
				t.Fatalf("Expand() = %v, want %v", seq, tt.want)
			}
			for i, w := range tt.want {
				if seq[i] != w {
					t.Errorf("Expand()[%d] = %v, want %v", i, seq[i], w)
				}
			}
		})
	}
}

func TestValuesIsBounds(t *testing.T) {
	if !Bounds(0, 1).IsBounds() {
		t.Error("Bounds() should report IsBounds")
	}
	if List(1, 2).IsBounds() {
		t.Error("List() should not report IsBounds")
	}
	if List().IsBounds() {
		t.Error("empty List() should still be a list")
	}
	if !(Values{}).IsBounds() {
		t.Error("zero Values is treated as min/max form")
	}
}
