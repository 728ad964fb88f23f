package cgen

// StringLiteral - Makes a C string literal out of a PTUC string literal by replacing its first and last character
// with a double quote. Strings shorter than 3 characters are returned unchanged.
// Embedded quotes and escapes are not translated, so a PTUC literal containing a double quote does not
// produce a valid C literal.
func StringLiteral(p string) string {
	if len(p) < 3 {
		return p
	}

	b := []byte(p)
	b[0] = '"'
	b[len(b)-1] = '"'

	return string(b)
}

// rewriteLiterals - Returns body with every quoted PTUC literal in it passed through StringLiteral.
// An unterminated literal is left as it is.
func rewriteLiterals(body string) string {
	var out []byte
	last := 0

	for i := 0; i < len(body); i++ {
		q := body[i]
		if q != '\'' && q != '"' {
			continue
		}

		end := i + 1
		for end < len(body) && body[end] != q {
			if body[end] == '\\' {
				end++
			}
			end++
		}
		if end >= len(body) {
			break
		}

		out = append(out, body[last:i]...)
		out = append(out, StringLiteral(body[i:end+1])...)
		last = end + 1
		i = end
	}

	if out == nil {
		return body
	}

	return string(append(out, body[last:]...))
}
