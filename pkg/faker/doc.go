// Package faker provides categorized pseudo-random value producers for
// fixture generation: internet data (emails, IPs, URLs), identity data
// (names, phones, job titles), commerce and finance data, timestamps, and
// generic strings and numbers.
//
// A Faker created with New draws from a randomly seeded PRNG and uses
// crypto-quality UUIDs. NewSeeded produces a fully deterministic Faker for
// reproducible fixtures: identical seeds yield identical value streams.
package faker
