/*
Package schema holds the fixed layout of the entity model storage location:
the location name, the key attribute, the four document sections, and the
building blocks for creating the table.

Everything in this package is constant. The layout is decided once at create
time and never migrated.
*/
package schema
