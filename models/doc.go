// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - UpdatePersonRequest: optional name, company, email, phone, skills
  - SkillInput: skill with a required rating
  - CheckInRequest: optional checked_in (defaults to true)
  - CheckoutRequest: person_id, hardware_id
  - ReturnRequest: loan_id
  - ScanRequest: person_id, event_id

# Response Types

  - PersonWithSkills: person fields plus skills [{skill, rating}]
  - PersonInfo: person, skills, hardware loans and scanned events
  - CheckInStatus: person_id, checked_in
  - SkillFrequency: skill, frequency
  - ErrorResponse: error (specific message), status (HTTP status text)

# Domain Types

  - Person: participant record
  - SkillRating: skill name with a rating
  - HardwareItem: inventory row with quantity_available
  - HardwareLoan: checkout record, open until returned
  - Event: scheduled event with its scan count
  - EventScan: attendance record for a (person, event) pair

# Mutable Fields

Only these person columns can be changed through an update:

	FieldName    = "name"
	FieldCompany = "company"
	FieldEmail   = "email"
	FieldPhone   = "phone"
*/
package models
