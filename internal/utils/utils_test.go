package utils

import (
	"reflect"
	"strings"
	"testing"
)

func TestRandStringBytesMaskImpr(t *testing.T) {
	s := RandStringBytesMaskImpr(8)
	if len(s) != 8 {
		t.Fatalf("Expected 8 chars, got %d", len(s))
	}
	for _, r := range s {
		if !strings.ContainsRune(letterBytes, r) {
			t.Errorf("Unexpected character %q in short id", r)
		}
	}

	// 碰撞概率极低，连续生成不应重复
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := RandStringBytesMaskImpr(8)
		if seen[id] {
			t.Fatalf("Duplicate short id generated: %s", id)
		}
		seen[id] = true
	}
}

func TestSplitTags(t *testing.T) {
	got := SplitTags(" algebra, essay ,,  ")
	want := []string{"algebra", "essay"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}

	if SplitTags("") != nil {
		t.Error("Expected nil for empty input")
	}
}

func TestCheckPasswordHash(t *testing.T) {
	hash, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if !CheckPasswordHash("secret123", hash) {
		t.Error("Correct password rejected")
	}
	if CheckPasswordHash("wrong", hash) {
		t.Error("Wrong password accepted")
	}
}

func TestSanitizeText(t *testing.T) {
	got := SanitizeText(`надо решить <script>alert(1)</script>задачу`)
	if strings.Contains(got, "<script>") {
		t.Errorf("Script tag survived sanitization: %s", got)
	}
	if !strings.Contains(got, "надо решить") {
		t.Errorf("Plain text was lost: %s", got)
	}
}
