// Command caserepl applies case-preserving find-and-replace rules across a
// file or directory tree.
package main

func main() {
	Execute()
}
