package security

import "testing"

func TestSanitize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"hello", "hello"},
		{"<script>", "&lt;script&gt;"},
		{`a"b'c`, "a&quot;b&#039;c"},
		{"fish & chips", "fish &amp; chips"},
		{"&<>\"'", "&amp;&lt;&gt;&quot;&#039;"},
		{"", ""},
	}

	for _, test := range tests {
		result := Sanitize(test.input)
		if result != test.expected {
			t.Errorf("Sanitize(%q) = %q, expected %q", test.input, result, test.expected)
		}
	}
}

func TestIsSuspicious(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"zero", false},
		{"regular password", false},
		{"SELECT * FROM users", true},
		{"select", true},
		{"DrOp table", true},
		{"delete", true},
		{"update", true},
		{"' OR 1=1", true},
		{"or 1=1", true},
		{"admin'--", true},
		{"double-dash--anywhere", true},
		{"or 1 = 1", false}, // spaced variant is not in the pattern set
		{"", false},
	}

	for _, test := range tests {
		result := IsSuspicious(test.input)
		if result != test.expected {
			t.Errorf("IsSuspicious(%q) = %v, expected %v", test.input, result, test.expected)
		}
	}
}
