package greeting

// Greet greets name, or a stranger when name is empty.
// Whitespace-only names are greeted as given.
func Greet(name string) string {
	if name == "" {
		return "Hello, Stranger!"
	}
	return "Hello, " + name + "!"
}
