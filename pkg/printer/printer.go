package printer

import (
	"fmt"
	"net"
	"os"
	"time"
)

// Printer is the interface for sending raw ESC/POS data to a thermal printer.
type Printer interface {
	// Print sends raw ESC/POS bytes to the printer.
	Print(data []byte) error
	// Close releases the printer connection/handle.
	Close() error
	// IsConnected returns true if the printer connection is active.
	IsConnected() bool
}

// Options selects and configures the printer backend.
type Options struct {
	// Type is "usb", "network" or "none".
	Type string
	// DevicePath is the USB device file, e.g. "/dev/usb/lp0".
	DevicePath string
	// Address is the TCP address of a network printer, e.g. "192.168.1.50:9100".
	Address string
	// DialTimeout bounds network printer connection attempts.
	DialTimeout time.Duration
}

// New creates the printer backend described by opts. An empty or "none"
// type yields a no-op printer so the dashboard works without hardware.
func New(opts Options) (Printer, error) {
	switch opts.Type {
	case "usb":
		if opts.DevicePath == "" {
			return nil, fmt.Errorf("printer: device path is required for USB printers")
		}
		return &usbPrinter{path: opts.DevicePath}, nil
	case "network":
		if opts.Address == "" {
			return nil, fmt.Errorf("printer: address is required for network printers")
		}
		timeout := opts.DialTimeout
		if timeout <= 0 {
			timeout = 5 * time.Second
		}
		return &networkPrinter{address: opts.Address, timeout: timeout}, nil
	case "none", "":
		return Null(), nil
	default:
		return nil, fmt.Errorf("printer: unknown printer type %q (use usb, network, or none)", opts.Type)
	}
}

// Null returns a no-op printer for environments without hardware.
func Null() Printer {
	return &nullPrinter{}
}

// --- USB printer (writes to a device file) ---

type usbPrinter struct {
	path string
}

func (p *usbPrinter) Print(data []byte) error {
	f, err := os.OpenFile(p.path, os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("printer: failed to open USB device %s: %w", p.path, err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("printer: failed to write to USB device %s: %w", p.path, err)
	}
	return nil
}

func (p *usbPrinter) Close() error {
	return nil // opened per print job
}

func (p *usbPrinter) IsConnected() bool {
	_, err := os.Stat(p.path)
	return err == nil
}

// --- Network printer (dials TCP per job) ---

type networkPrinter struct {
	address string
	timeout time.Duration
}

func (p *networkPrinter) Print(data []byte) error {
	conn, err := net.DialTimeout("tcp", p.address, p.timeout)
	if err != nil {
		return fmt.Errorf("printer: failed to connect to %s: %w", p.address, err)
	}
	defer conn.Close()

	_ = conn.SetWriteDeadline(time.Now().Add(10 * time.Second))

	if _, err := conn.Write(data); err != nil {
		return fmt.Errorf("printer: failed to write to %s: %w", p.address, err)
	}
	return nil
}

func (p *networkPrinter) Close() error {
	return nil // dialed per print job
}

func (p *networkPrinter) IsConnected() bool {
	conn, err := net.DialTimeout("tcp", p.address, 2*time.Second)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}

// --- Null printer ---

type nullPrinter struct{}

func (p *nullPrinter) Print(data []byte) error { return nil }
func (p *nullPrinter) Close() error            { return nil }
func (p *nullPrinter) IsConnected() bool       { return false }
