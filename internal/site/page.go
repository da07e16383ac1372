package site

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	stdhtml "html"
	"html/template"
	"os"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/ziadkadry99/smoothie-menu/internal/menu"
)

// ErrContainerNotFound is returned when the host page has no element with
// the configured container id.
var ErrContainerNotFound = errors.New("container element not found in host page")

// Page is a host HTML page with one container element the menu is
// injected into.
type Page struct {
	host        []byte
	containerID string
}

// LoadPage reads the host page at path. An empty path uses the built-in
// page. The page must contain an element whose id is containerID.
func LoadPage(path, containerID string) (*Page, error) {
	var host []byte
	if path == "" {
		host = []byte(strings.ReplaceAll(defaultHostPage, "{{CONTAINER_ID}}", stdhtml.EscapeString(containerID)))
	} else {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading host page: %w", err)
		}
		host = data
	}
	return NewPage(host, containerID)
}

// NewPage wraps host markup, checking that the container element exists.
func NewPage(host []byte, containerID string) (*Page, error) {
	doc, err := html.Parse(bytes.NewReader(host))
	if err != nil {
		return nil, fmt.Errorf("parsing host page: %w", err)
	}
	if findByID(doc, containerID) == nil {
		return nil, fmt.Errorf("%w: #%s", ErrContainerNotFound, containerID)
	}
	return &Page{host: host, containerID: containerID}, nil
}

// ContainerID returns the id of the element the menu is injected into.
func (p *Page) ContainerID() string { return p.containerID }

// Inject returns the host page with the container's children replaced by
// markup. The host page itself is left untouched.
func (p *Page) Inject(markup template.HTML) ([]byte, error) {
	doc, err := html.Parse(bytes.NewReader(p.host))
	if err != nil {
		return nil, fmt.Errorf("parsing host page: %w", err)
	}

	target := findByID(doc, p.containerID)
	if target == nil {
		return nil, fmt.Errorf("%w: #%s", ErrContainerNotFound, p.containerID)
	}

	for child := target.FirstChild; child != nil; {
		next := child.NextSibling
		target.RemoveChild(child)
		child = next
	}

	nodes, err := html.ParseFragment(strings.NewReader(string(markup)), target)
	if err != nil {
		return nil, fmt.Errorf("parsing menu markup: %w", err)
	}
	for _, n := range nodes {
		target.AppendChild(n)
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, doc); err != nil {
		return nil, fmt.Errorf("rendering page: %w", err)
	}
	return buf.Bytes(), nil
}

// Build runs one menu load into c and returns the injected page. Panes
// still pending after timeout, or when ctx hits its deadline, are rendered
// in their loading state. A zero timeout waits until ctx is done. Only a
// canceled ctx is an error.
func (p *Page) Build(ctx context.Context, loader *menu.Loader, c *menu.Container, timeout time.Duration) ([]byte, error) {
	markup, err := loader.LoadAndRender(ctx, c, timeout)
	if err != nil {
		return nil, fmt.Errorf("rendering menu: %w", err)
	}
	return p.Inject(markup)
}

// findByID returns the first element with the given id attribute.
func findByID(n *html.Node, id string) *html.Node {
	if n.Type == html.ElementNode {
		for _, a := range n.Attr {
			if a.Namespace == "" && a.Key == "id" && a.Val == id {
				return n
			}
		}
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if found := findByID(child, id); found != nil {
			return found
		}
	}
	return nil
}
