package nlp_test

import (
	"reflect"
	"testing"

	"smart-day-planner/internal/nlp"
)

func TestSegment(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "Commas and conjunction",
			text: "Email John about the meeting, call the bank, and write up the minutes",
			want: []string{"Email John about the meeting", "call the bank", "write up the minutes"},
		},
		{
			name: "Semicolons",
			text: "buy milk; water the plants",
			want: []string{"buy milk", "water the plants"},
		},
		{
			name: "Then separator",
			text: "stretch then shower",
			want: []string{"stretch", "shower"},
		},
		{
			name: "Duration phrase not split on and",
			text: "Deep work for 2 hours and 30 minutes then gym",
			want: []string{"Deep work for 2 hours and 30 minutes", "gym"},
		},
		{
			name: "Comma between digits kept",
			text: "review budget rows 1,200 through 1,400",
			want: []string{"review budget rows 1,200 through 1,400"},
		},
		{
			name: "No separator yields whole input",
			text: "write the report",
			want: []string{"write the report"},
		},
		{
			name: "Conjunction inside a word does not split",
			text: "brandish the handbook",
			want: []string{"brandish the handbook"},
		},
		{
			name: "Empty input",
			text: "   ",
			want: nil,
		},
		{
			name: "Separators only still yields input",
			text: ", ;",
			want: []string{", ;"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := nlp.Segment(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Segment(%q) = %#v, want %#v", tt.text, got, tt.want)
			}
		})
	}
}

func TestFragmentsRestartable(t *testing.T) {
	seq := nlp.Fragments("one, two, three")

	first := 0
	for range seq {
		first++
	}
	second := 0
	for range seq {
		second++
	}

	if first != 3 || second != 3 {
		t.Errorf("expected 3 fragments on both passes, got %d then %d", first, second)
	}
}

func TestFragmentsEarlyStop(t *testing.T) {
	var got []string
	for f := range nlp.Fragments("a, b, c") {
		got = append(got, f)
		if len(got) == 2 {
			break
		}
	}
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("early stop yielded %#v", got)
	}
}
