package testutil

// WithStandardTestData adds the standard test dataset: three candidates
// with distinct skills, one without optional fields, one with a wide-character name.
func (b *Builder) WithStandardTestData() *Builder {
	return b.
		WithCandidate("1",
			Name("Alice"), Contact("555-0100"),
			Skills("Go, PostgreSQL"), Experience("3 years backend")).
		WithCandidate("2",
			Name("Bob"), Contact("bob@example.com")).
		WithCandidate("3",
			Name("김민수"), Contact("010-1234-5678"),
			Skills("Python, Go, React"), Experience("신입"))
}
