// Package envelope implements the federation wire envelope codec.
//
// Outgoing entities are wrapped in a fixed two-level envelope:
//
//	<XML>
//	  <post>
//	    <entity_wire_tag>...</entity_wire_tag>
//	  </post>
//	</XML>
//
// Incoming documents are validated against that shape, the payload
// element's tag is resolved to a registered entity type, and the entity
// is rebuilt recursively from the payload according to the type's
// declared schema. Envelope shape is checked strictly; individual
// properties missing from the payload are omitted rather than rejected.
package envelope
