// Package passwords implements the password policy for both user roles:
// bcrypt hashing, the student default secret derived from the date of birth,
// and the tolerant normalization applied to student login input.
package passwords

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/tharatepjaiya-creator/Student-info1/internal/pkg/apperrors"
)

// BcryptCost matches the salt rounds used when the database was first populated.
const BcryptCost = 10

// Hash returns the salted bcrypt digest of secret.
func Hash(secret string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(secret), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// Verify reports whether secret matches digest. bcrypt recomputes the digest
// with the stored salt and compares in constant time.
func Verify(secret, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(secret)) == nil
}

// DefaultSecret derives a student's initial password from a YYYY-MM-DD date of
// birth: DD/MM/year in the Buddhist Era (Gregorian year + 543).
// "2005-03-07" becomes "07/03/2548".
func DefaultSecret(dob string) (string, error) {
	parts := strings.Split(dob, "-")
	if len(parts) != 3 || len(parts[0]) != 4 || len(parts[1]) != 2 || len(parts[2]) != 2 {
		return "", fmt.Errorf("%w: want YYYY-MM-DD, got %q", apperrors.ErrInvalidBirthDate, dob)
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return "", fmt.Errorf("%w: non-numeric year in %q", apperrors.ErrInvalidBirthDate, dob)
	}

	return fmt.Sprintf("%s/%s/%d", parts[2], parts[1], year+543), nil
}

// NormalizeSecret maps the input shapes students actually type into the
// canonical DD/MM/YYYY form that DefaultSecret produces.
//
// Every rune other than a digit or '/' is stripped. If the remainder splits on
// '/' into three parts, day and month are zero-padded to two digits. If it is
// exactly eight digits with no separator, it is read as DDMMYYYY. Anything else
// is returned as stripped, so a mismatched secret stays mismatched.
func NormalizeSecret(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '/' {
			b.WriteRune(r)
		}
	}
	clean := b.String()

	if strings.Contains(clean, "/") {
		parts := strings.Split(clean, "/")
		if len(parts) == 3 {
			return fmt.Sprintf("%s/%s/%s", pad2(parts[0]), pad2(parts[1]), parts[2])
		}
		return clean
	}

	if len(clean) == 8 {
		return clean[0:2] + "/" + clean[2:4] + "/" + clean[4:8]
	}

	return clean
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
