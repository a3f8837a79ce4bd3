// Package datemath implements the calendar arithmetic behind every prediction
// the service makes: cycle projections, due dates, gestational age, weight-gain
// guidance and postpartum recovery timelines.
//
// Every function is pure. Inputs are assumed to have passed request validation;
// for values outside the documented domain the functions still return a result
// rather than an error.
//
// The offsets are fixed population approximations (a 14-day luteal phase, a
// 280-day gestation from LMP) and are not derived from a person's history.
package datemath
