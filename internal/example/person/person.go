// Package person is a small value type used by the gx demo.
package person

// Person has an age and a health level.
type Person struct {
	age    int
	health float32
}

// New returns a person.
func New(age int, health float32) Person {
	return Person{age: age, health: health}
}

// Age returns the age in years.
func (p Person) Age() int {
	return p.age
}

// Health returns the health level.
func (p Person) Health() float32 {
	return p.health
}

// Grow adds one year to the age.
func (p *Person) Grow() {
	p.age++
}
