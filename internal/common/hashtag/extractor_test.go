package hashtag_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"project-board/internal/common/hashtag"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "no tags",
			text: "no tags here",
			want: []string{},
		},
		{
			name: "empty input",
			text: "",
			want: []string{},
		},
		{
			name: "single tag",
			text: "hello #java",
			want: []string{"#java"},
		},
		{
			name: "hyphen terminates the token",
			text: "hello #java and #spring-boot",
			want: []string{"#java", "#spring"},
		},
		{
			name: "bare hash is not a tag",
			text: "just a # sign",
			want: []string{},
		},
		{
			name: "duplicates collapse, first-appearance order kept",
			text: "#go #web #go #backend #web",
			want: []string{"#go", "#web", "#backend"},
		},
		{
			name: "case preserved, distinct cases are distinct tags",
			text: "#Java #java",
			want: []string{"#Java", "#java"},
		},
		{
			name: "digits and underscore are word characters",
			text: "#go1_21 rocks",
			want: []string{"#go1_21"},
		},
		{
			name: "tag at start of text",
			text: "#first then prose",
			want: []string{"#first"},
		},
		{
			name: "adjacent hashes",
			text: "##double",
			want: []string{"#double"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := hashtag.Extract(tt.text)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("Extract mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMerge(t *testing.T) {
	got := hashtag.Merge(
		[]string{"#java", "#spring"},
		[]string{"#spring", "#boot"},
		nil,
	)
	want := []string{"#java", "#spring", "#boot"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Merge mismatch (-want +got):\n%s", diff)
	}
}
