package printer

import (
	"bytes"
	"strings"
	"testing"
)

func TestDocumentInit(t *testing.T) {
	doc := NewDocument(32)
	if !bytes.HasPrefix(doc.Bytes(), []byte{ESC, '@'}) {
		t.Error("document does not start with ESC @")
	}
}

func TestKeyValueAlignment(t *testing.T) {
	doc := NewDocument(32)
	doc.Reset()
	doc.KeyValue("Subtotal:", "P280.00")

	line := strings.TrimSuffix(string(doc.Bytes()[2:]), "\n")
	if len(line) != 32 {
		t.Errorf("line width = %d, want 32: %q", len(line), line)
	}
	if !strings.HasPrefix(line, "Subtotal:") || !strings.HasSuffix(line, "P280.00") {
		t.Errorf("misaligned key/value line: %q", line)
	}
}

func TestKeyValueOverflowKeepsOneSpace(t *testing.T) {
	doc := NewDocument(10)
	doc.Reset()
	doc.KeyValue("A very long key:", "P1,234.00")

	line := strings.TrimSuffix(string(doc.Bytes()[2:]), "\n")
	if !strings.Contains(line, "key: P1,234.00") {
		t.Errorf("overflow line lost its separator space: %q", line)
	}
}

func TestItemLine(t *testing.T) {
	doc := NewDocument(32)
	doc.Reset()
	doc.ItemLine(2, "Latte 12oz", "P280.00")

	line := strings.TrimSuffix(string(doc.Bytes()[2:]), "\n")
	if len(line) != 32 {
		t.Errorf("line width = %d, want 32: %q", len(line), line)
	}
	if !strings.HasPrefix(line, "2x Latte 12oz") {
		t.Errorf("item prefix wrong: %q", line)
	}
}

func TestIndentLine(t *testing.T) {
	doc := NewDocument(32)
	doc.Reset()
	doc.IndentLine("Oat Milk", "P20.00")

	line := strings.TrimSuffix(string(doc.Bytes()[2:]), "\n")
	if !strings.HasPrefix(line, "  + Oat Milk") || !strings.HasSuffix(line, "P20.00") {
		t.Errorf("indent line wrong: %q", line)
	}
}

func TestSeparatorWidth(t *testing.T) {
	doc := NewDocument(48)
	doc.Reset()
	doc.Separator('-')

	line := strings.TrimSuffix(string(doc.Bytes()[2:]), "\n")
	if line != strings.Repeat("-", 48) {
		t.Errorf("separator = %q, want 48 dashes", line)
	}
}

func TestCutCommands(t *testing.T) {
	full := NewDocument(32).Cut().Bytes()
	if !bytes.HasSuffix(full, []byte{GS, 'V', 0x00}) {
		t.Error("full cut command missing")
	}
	partial := NewDocument(32).PartialCut().Bytes()
	if !bytes.HasSuffix(partial, []byte{GS, 'V', 0x01}) {
		t.Error("partial cut command missing")
	}
}

func TestNewPrinterFromConfig(t *testing.T) {
	tests := []struct {
		name        string
		printerType string
		usbPath     string
		address     string
		wantErr     bool
	}{
		{name: "none", printerType: "none"},
		{name: "empty defaults to null", printerType: ""},
		{name: "usb needs a path", printerType: "usb", wantErr: true},
		{name: "usb with path", printerType: "usb", usbPath: "/dev/usb/lp0"},
		{name: "network needs an address", printerType: "network", wantErr: true},
		{name: "network with address", printerType: "network", address: "192.168.1.50:9100"},
		{name: "unknown type", printerType: "carrier-pigeon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPrinterFromConfig(tt.printerType, tt.usbPath, tt.address)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewPrinterFromConfig: %v", err)
			}
			if p == nil {
				t.Error("nil printer")
			}
		})
	}
}

func TestNullPrinter(t *testing.T) {
	p := NewNullPrinter()
	if err := p.Print([]byte("anything")); err != nil {
		t.Errorf("null printer returned error: %v", err)
	}
	if p.IsConnected() {
		t.Error("null printer should not report connected")
	}
}
