// Package vocab validates and normalizes user-facing color and position
// vocabulary. It accepts canonical English names, hex triples, and a
// closed set of Chinese aliases carried over from the tool's original
// audience. Unknown aliases pass through unchanged to the underlying
// validator, so the alias table never rejects input on its own.
package vocab
