// Package template defines the template seam the component kit renders
// partials through. Concrete engines live in subpackages.
package template
