// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package seed bulk-loads participants, hardware inventory and events from the
JSON exports produced at registration.

Hackers file:

	[{"name": "Ada", "company": "Acme", "email": "ada@example.com",
	  "phone": "555-0100", "skills": [{"skill": "Go", "rating": 4}]}]

Hardware file:

	[{"hardware_name": "Arduino", "quantity_available": 10}]

Events file:

	[{"event_name": "Kickoff", "starts_at": "2025-03-01T09:00:00Z"}]

Import validates the whole bundle, then writes it in one transaction so a
bad row leaves the database untouched.
*/
package seed
