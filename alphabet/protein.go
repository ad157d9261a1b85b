package alphabet

// MakeProteinAlphabet returns the 20 standard amino-acid symbols in
// both cases.
func MakeProteinAlphabet() *Alphabet {
	return New([]byte("ARNDCEQGHILKMFPSTWYVarndceqghilkmfpstwyv"))
}

// MakeProteinIUPACAlphabet adds the IUPAC ambiguity/placeholder codes
// (B, X, Z) to MakeProteinAlphabet.
func MakeProteinIUPACAlphabet() *Alphabet {
	return New([]byte("ABCDEFGHIKLMNPQRSTVWXYZabcdefghiklmnpqrstvwxyz"))
}
