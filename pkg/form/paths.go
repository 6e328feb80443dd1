package form

import (
	"fmt"
	"strconv"
	"strings"
)

func cloneValues(src map[string]any) map[string]any {
	if len(src) == 0 {
		return make(map[string]any)
	}
	out := make(map[string]any, len(src))
	for k, v := range src {
		out[k] = deepCopy(v)
	}
	return out
}

func deepCopy(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		clone := make(map[string]any, len(typed))
		for k, v := range typed {
			clone[k] = deepCopy(v)
		}
		return clone
	case []any:
		clone := make([]any, len(typed))
		for i, v := range typed {
			clone[i] = deepCopy(v)
		}
		return clone
	case []string:
		return append([]string(nil), typed...)
	default:
		return typed
	}
}

func splitPath(path string) []string {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil
	}
	return strings.Split(path, ".")
}

func getPath(root map[string]any, path string) (any, bool) {
	segments := splitPath(path)
	if root == nil || len(segments) == 0 {
		return nil, false
	}
	current := any(root)
	for _, segment := range segments {
		switch node := current.(type) {
		case map[string]any:
			next, ok := node[segment]
			if !ok {
				return nil, false
			}
			current = next
		case []any:
			idx, err := strconv.Atoi(segment)
			if err != nil || idx < 0 || idx >= len(node) {
				return nil, false
			}
			current = node[idx]
		default:
			return nil, false
		}
	}
	return current, true
}

// setPath writes value at path, creating intermediate maps and slices. A
// numeric segment addresses a slice index.
func setPath(root map[string]any, path string, value any) error {
	segments := splitPath(path)
	if root == nil {
		return fmt.Errorf("form: root map is nil")
	}
	if len(segments) == 0 {
		return fmt.Errorf("form: empty field path")
	}
	_, err := setSegments(root, segments, value)
	return err
}

// setSegments returns the (possibly reallocated) container so slice growth
// propagates to the parent.
func setSegments(node any, segments []string, value any) (any, error) {
	segment := segments[0]
	last := len(segments) == 1

	switch typed := node.(type) {
	case map[string]any:
		if last {
			typed[segment] = value
			return typed, nil
		}
		child, ok := typed[segment]
		if !ok || !isContainer(child) {
			child = newContainer(segments[1])
		}
		updated, err := setSegments(child, segments[1:], value)
		if err != nil {
			return nil, err
		}
		typed[segment] = updated
		return typed, nil

	case []any:
		idx, err := strconv.Atoi(segment)
		if err != nil {
			return nil, fmt.Errorf("form: expected numeric segment, got %q", segment)
		}
		if idx < 0 {
			return nil, fmt.Errorf("form: negative index %d", idx)
		}
		if len(typed) <= idx {
			typed = append(typed, make([]any, idx+1-len(typed))...)
		}
		if last {
			typed[idx] = value
			return typed, nil
		}
		child := typed[idx]
		if !isContainer(child) {
			child = newContainer(segments[1])
		}
		updated, err := setSegments(child, segments[1:], value)
		if err != nil {
			return nil, err
		}
		typed[idx] = updated
		return typed, nil

	default:
		return nil, fmt.Errorf("form: unexpected container for segment %q", segment)
	}
}

func deletePath(root map[string]any, path string) {
	segments := splitPath(path)
	if root == nil || len(segments) == 0 {
		return
	}
	parentPath := strings.Join(segments[:len(segments)-1], ".")
	leaf := segments[len(segments)-1]

	var parent any = root
	if parentPath != "" {
		var ok bool
		if parent, ok = getPath(root, parentPath); !ok {
			return
		}
	}
	switch node := parent.(type) {
	case map[string]any:
		delete(node, leaf)
	case []any:
		if idx, err := strconv.Atoi(leaf); err == nil && idx >= 0 && idx < len(node) {
			node[idx] = nil
		}
	}
}

func isContainer(value any) bool {
	switch value.(type) {
	case map[string]any, []any:
		return true
	default:
		return false
	}
}

func newContainer(nextSegment string) any {
	if _, err := strconv.Atoi(nextSegment); err == nil {
		return []any{}
	}
	return make(map[string]any)
}

func joinPath(parent, child string) string {
	parent = strings.TrimSpace(parent)
	child = strings.TrimSpace(child)
	if parent == "" {
		return child
	}
	if child == "" {
		return parent
	}
	return parent + "." + child
}
