// Command bagctl simulates block bag sessions against inventory fixtures.
package main

func main() {
	execute()
}
